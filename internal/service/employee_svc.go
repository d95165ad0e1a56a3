package service

import (
	"context"
	"fmt"

	"mall_query_v1/internal/api/dto"
	"mall_query_v1/internal/model"
	"mall_query_v1/internal/repository"
)

// EmployeeService 员工查询
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
	opts         QueryOptions
}

// NewEmployeeService 创建员工服务
func NewEmployeeService(employeeRepo repository.EmployeeRepository, opts QueryOptions) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, opts: opts}
}

// ListShopEmployees 商店员工，班次格式错误时 working_hours 为空
func (s *EmployeeService) ListShopEmployees(ctx context.Context, shopName string) ([]dto.ShopEmployeeResp, error) {
	employees, err := s.listByStore(ctx, shopName)
	if err != nil {
		return nil, err
	}

	list := make([]dto.ShopEmployeeResp, 0, len(employees))
	for _, e := range employees {
		s.opts.warnMalformedShift(e.Name, e.StoreName, e.ShiftTime)
		list = append(list, dto.ShopEmployeeResp{
			Name:         e.Name,
			Contact:      e.Contact,
			Position:     e.Position,
			WorkingHours: e.ShiftTime.Hours(),
		})
	}
	return list, nil
}

// ListOnDuty 在 clock 时刻处于班次内的商店员工（上下班时刻都算在班）
func (s *EmployeeService) ListOnDuty(ctx context.Context, shopName, clock string) ([]dto.OnDutyEmployeeResp, error) {
	at, err := model.ParseClock(clock)
	if err != nil {
		return nil, InvalidFormat("Time", ClockFormat)
	}

	employees, err := s.listByStore(ctx, shopName)
	if err != nil {
		return nil, err
	}

	list := make([]dto.OnDutyEmployeeResp, 0, len(employees))
	for _, e := range employees {
		s.opts.warnMalformedShift(e.Name, e.StoreName, e.ShiftTime)
		if !e.ShiftTime.Covers(at) {
			continue
		}
		list = append(list, dto.OnDutyEmployeeResp{
			Name:     e.Name,
			Contact:  e.Contact,
			Position: e.Position,
		})
	}
	return list, nil
}

// ListBranchEmployees 分店员工，没有时返回 NotFoundError
func (s *EmployeeService) ListBranchEmployees(ctx context.Context, branch string) ([]dto.BranchEmployeeResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	employees, err := s.employeeRepo.ListByBranch(ctx, branch)
	if err != nil {
		return nil, fmt.Errorf("查询分店员工失败: %w", err)
	}
	if len(employees) == 0 {
		return nil, NotFound("employee data", "branch", branch)
	}

	list := make([]dto.BranchEmployeeResp, 0, len(employees))
	for _, e := range employees {
		s.opts.warnMalformedShift(e.Name, e.BranchName, e.ShiftTime)
		list = append(list, dto.BranchEmployeeResp{
			Name:          e.Name,
			Contact:       e.Contact,
			Position:      e.Position,
			StartWorkTime: e.ShiftTime.StartText(),
			EndWorkTime:   e.ShiftTime.EndText(),
		})
	}
	return list, nil
}

// ListByPosition 分店与商店中担任该职位的员工，没有时返回 NotFoundError
func (s *EmployeeService) ListByPosition(ctx context.Context, position string) ([]dto.PositionEmployeeResp, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	rows, err := s.employeeRepo.ListByPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("按职位查询员工失败: %w", err)
	}
	if len(rows) == 0 {
		return nil, NotFound("employee data", "position", position)
	}

	list := make([]dto.PositionEmployeeResp, 0, len(rows))
	for _, row := range rows {
		s.opts.warnMalformedShift(row.Name, row.Location, row.ShiftTime)
		list = append(list, dto.PositionEmployeeResp{
			Name:     row.Name,
			Contact:  row.Contact,
			WorkTime: row.ShiftTime.Hours(),
			Location: row.Location,
		})
	}
	return list, nil
}

func (s *EmployeeService) listByStore(ctx context.Context, shopName string) ([]model.ShopEmployee, error) {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	employees, err := s.employeeRepo.ListByStore(ctx, shopName)
	if err != nil {
		return nil, fmt.Errorf("查询商店员工失败: %w", err)
	}
	return employees, nil
}

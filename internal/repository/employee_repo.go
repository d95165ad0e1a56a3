package repository

import (
	"context"

	"gorm.io/gorm"

	"mall_query_v1/internal/model"
)

// EmployeeRepository 员工查询
type EmployeeRepository interface {
	ListByStore(ctx context.Context, storeName string) ([]model.ShopEmployee, error)
	ListByBranch(ctx context.Context, branch string) ([]model.MallEmployee, error)
	ListByPosition(ctx context.Context, position string) ([]PositionEmployeeRow, error)
}

// PositionEmployeeRow 分店员工与商店员工合并后的行
// Location 对分店员工为 branch_name，对商店员工为 store_name
type PositionEmployeeRow struct {
	Name      string          `gorm:"column:name"`
	Contact   string          `gorm:"column:contact"`
	ShiftTime model.ShiftTime `gorm:"column:shift_time"`
	Location  string          `gorm:"column:location"`
}

// 分店员工在前，商店员工在后，各自按姓名、所在地排序
const positionEmployeesSQL = `
SELECT name, contact, shift_time, location FROM (
	SELECT name, contact, shift_time, branch_name AS location, 0 AS src FROM mall_employee WHERE position = ?
	UNION ALL
	SELECT name, contact, shift_time, store_name AS location, 1 AS src FROM shop_employee WHERE position = ?
) u
ORDER BY src, name, location`

type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepository 创建员工仓储
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) ListByStore(ctx context.Context, storeName string) ([]model.ShopEmployee, error) {
	var list []model.ShopEmployee
	err := r.db.WithContext(ctx).
		Where("store_name = ?", storeName).
		Order("name").
		Find(&list).Error
	return list, err
}

func (r *employeeRepo) ListByBranch(ctx context.Context, branch string) ([]model.MallEmployee, error) {
	var list []model.MallEmployee
	err := r.db.WithContext(ctx).
		Where("branch_name = ?", branch).
		Order("name").
		Find(&list).Error
	return list, err
}

func (r *employeeRepo) ListByPosition(ctx context.Context, position string) ([]PositionEmployeeRow, error) {
	var rows []PositionEmployeeRow
	err := r.db.WithContext(ctx).
		Raw(positionEmployeesSQL, position, position).
		Scan(&rows).Error
	return rows, err
}

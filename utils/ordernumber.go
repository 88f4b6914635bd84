package utils

import (
	"crypto/rand"
	"fmt"
	"time"
)

const orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateOrderNumber สร้างหมายเลขคำสั่งซื้อรูปแบบ ORD-<timestamp>-<random6>
// ให้ลูกค้าใช้ติดตามสถานะได้ แยกจาก id ภายใน
func GenerateOrderNumber() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand ล้มเหลวแทบเป็นไปไม่ได้ แต่กันไว้ด้วย timestamp
		return fmt.Sprintf("ORD-%d-%06d", time.Now().UnixMilli(), time.Now().Nanosecond()%1000000)
	}
	for i, b := range buf {
		buf[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), string(buf))
}

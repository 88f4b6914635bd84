// Package storage เก็บไฟล์รูป (สินค้า, แบนเนอร์, สลิปโอนเงิน)
// เลือก backend ได้จาก UPLOAD_DRIVER: local filesystem หรือ S3
package storage

import (
	"context"
	"io"
)

type BlobStore interface {
	// Put เขียนไฟล์ตาม key (เช่น "products/169...-photo.png")
	// คืน URL ที่ฝั่งเว็บใช้แสดงผลได้
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugHyphens  = regexp.MustCompile(`-+`)
)

// GenerateSlug แปลงชื่อสินค้า/หมวดหมู่เป็น slug สำหรับ URL
// ตัวอักษรที่ได้มีแค่ [a-z0-9-] ไม่มี hyphen ติดกันหรือนำหน้า/ปิดท้าย
func GenerateSlug(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

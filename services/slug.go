package services

import (
	"fmt"

	"github.com/TanthaiP001/spprosupply/utils"
)

type slugTakenFunc func(slug string, excludeID uint) (bool, error)

// resolveUniqueSlug แปลงชื่อเป็น slug แล้วไล่เติม -1, -2, ... จนกว่าจะว่าง
// excludeID ใช้ตอน rename เพื่อไม่ให้ชนกับตัวเอง
//
// การ probe แบบนี้ยังแพ้ race ระหว่างสอง writer ได้ ชั้นนอกจึงต้องจับ
// gorm.ErrDuplicatedKey จาก unique index แล้ววนมา resolve ใหม่อีกรอบ
func resolveUniqueSlug(name string, excludeID uint, taken slugTakenFunc) (string, error) {
	base := utils.GenerateSlug(name)
	slug := base
	for counter := 1; ; counter++ {
		used, err := taken(slug, excludeID)
		if err != nil {
			return "", err
		}
		if !used {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}

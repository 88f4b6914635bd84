package middlewares

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitStore เป็น abstraction ของตัวนับ request
// จะเป็น map ใน process เดียว หรือ Redis ตอน scale หลาย instance ก็ได้
type RateLimitStore interface {
	// Incr เพิ่มตัวนับของ key ในหน้าต่างเวลา window
	// คืนค่า count ปัจจุบันและเวลาที่หน้าต่างจะ reset
	Incr(key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// ---- in-memory store (default) ----

type memEntry struct {
	count   int
	resetAt time.Time
}

type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*memEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]*memEntry)}
}

func (s *MemoryStore) Incr(key string, window time.Duration) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	// กัน map โตไม่จำกัด: เกิน 10,000 key ค่อยกวาดตัวที่หมดอายุ
	if len(s.entries) > 10000 {
		for k, v := range s.entries {
			if v.resetAt.Before(now) {
				delete(s.entries, k)
			}
		}
	}

	e, ok := s.entries[key]
	if !ok || e.resetAt.Before(now) {
		e = &memEntry{count: 0, resetAt: now.Add(window)}
		s.entries[key] = e
	}
	e.count++
	return e.count, e.resetAt, nil
}

// ---- middleware ----

type RateLimitOptions struct {
	Window      time.Duration
	MaxRequests int
	Message     string
}

// ClientIP อ่าน IP จาก x-forwarded-for ตัวแรก → x-real-ip → "unknown"
func ClientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if ip := c.GetHeader("X-Real-Ip"); ip != "" {
		return ip
	}
	return "unknown"
}

// RateLimit ตอบ 429 พร้อม Retry-After เมื่อ key (ip:path) เกินโควต้า
func RateLimit(store RateLimitStore, opt RateLimitOptions) gin.HandlerFunc {
	message := opt.Message
	if message == "" {
		message = "Too many requests, please try again later."
	}

	return func(c *gin.Context) {
		key := ClientIP(c) + ":" + c.Request.URL.Path

		count, resetAt, err := store.Incr(key, opt.Window)
		if err != nil {
			// store ล่ม (เช่น Redis หลุด) ปล่อยผ่านดีกว่าบล็อกทั้งเว็บ
			c.Next()
			return
		}

		if count > opt.MaxRequests {
			retryAfter := int(math.Ceil(time.Until(resetAt).Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.Header("X-RateLimit-Limit", strconv.Itoa(opt.MaxRequests))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}

		c.Next()
	}
}

// RateLimiters รวม policy สำเร็จรูปของแต่ละกลุ่ม endpoint
type RateLimiters struct {
	Auth   gin.HandlerFunc // 5 req / 15 นาที
	API    gin.HandlerFunc // 60 req / นาที
	Admin  gin.HandlerFunc // 30 req / นาที
	Upload gin.HandlerFunc // 10 req / นาที
}

func NewRateLimiters(store RateLimitStore) *RateLimiters {
	return &RateLimiters{
		Auth: RateLimit(store, RateLimitOptions{
			Window:      15 * time.Minute,
			MaxRequests: 5,
			Message:     "Too many authentication attempts, please try again later.",
		}),
		API: RateLimit(store, RateLimitOptions{
			Window:      time.Minute,
			MaxRequests: 60,
		}),
		Admin: RateLimit(store, RateLimitOptions{
			Window:      time.Minute,
			MaxRequests: 30,
			Message:     "Too many admin requests, please try again later.",
		}),
		Upload: RateLimit(store, RateLimitOptions{
			Window:      time.Minute,
			MaxRequests: 10,
			Message:     "Too many file uploads, please try again later.",
		}),
	}
}

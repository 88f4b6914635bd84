package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

type MailConfig struct {
	SMTPAddress string // host:port
	From        string
	Password    string
	SMTPHost    string
}

type OrderMailData struct {
	Name        string
	OrderNumber string
	Total       float64
	TrackURL    string
}

var orderMailTmpl = template.Must(template.New("order").Parse(`<html><body>
<p>สวัสดีคุณ {{.Name}},</p>
<p>ร้านได้รับคำสั่งซื้อหมายเลข <b>{{.OrderNumber}}</b> ยอดรวม {{printf "%.2f" .Total}} บาท เรียบร้อยแล้ว</p>
<p>ติดตามสถานะได้ที่ <a href="{{.TrackURL}}">{{.TrackURL}}</a></p>
<p>ขอบคุณที่อุดหนุนครับ</p>
</body></html>`))

// SendOrderConfirmation ส่งอีเมลยืนยันคำสั่งซื้อ (best-effort)
func SendOrderConfirmation(cfg MailConfig, emailTo string, data OrderMailData) error {
	if cfg.SMTPAddress == "" || cfg.From == "" {
		return nil // ไม่ได้ตั้งค่า SMTP ก็ข้ามไป
	}

	var body bytes.Buffer
	if err := orderMailTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		cfg.From,
		"ยืนยันคำสั่งซื้อ "+data.OrderNumber,
		body.String(),
	)

	auth := smtp.PlainAuth("", cfg.From, cfg.Password, cfg.SMTPHost)
	if err := smtp.SendMail(cfg.SMTPAddress, auth, cfg.From, []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gymtrack_backend/internals/configs"
)

// Mailer kirim email lewat Amazon SES.
// Kalau SES_FROM_EMAIL kosong → mailer nonaktif dan semua Send jadi no-op
// (berguna di lokal/dev tanpa kredensial AWS).
var (
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
)

func Init() {
	fromEmail = configs.SESFromEmail
	fromName = configs.SESFromName

	if fromEmail == "" {
		log.Println("⚠️ SES_FROM_EMAIL kosong, mailer nonaktif")
		return
	}

	cfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(configs.SESRegion),
	)
	if err != nil {
		log.Printf("⚠️ Gagal load AWS config (%v), mailer nonaktif", err)
		return
	}

	client = sesv2.NewFromConfig(cfg)
	enabled = true
	log.Printf("✅ Mailer aktif: from=%s region=%s", fromEmail, configs.SESRegion)
}

func IsEnabled() bool { return enabled }

// SendPasswordReset kirim link reset password.
// Dipanggil SETELAH transaksi token commit; kegagalan kirim cuma di-log,
// tidak mempengaruhi flow (fire-and-forget).
func SendPasswordReset(toEmail, toName, rawSecret string, ttl time.Duration) {
	if !enabled {
		log.Printf("[MAIL] skip (mailer nonaktif): reset password ke %s", toEmail)
		return
	}

	resetLink := fmt.Sprintf("%s/auth/reset-password?token=%s", configs.AppBaseURL, rawSecret)
	minutes := int(ttl.Minutes())

	subject := "Restablecer tu contraseña"
	textBody := fmt.Sprintf(`Hola %s,

Recibimos una solicitud para restablecer tu contraseña.

Abrí el siguiente enlace para elegir una nueva:
%s

El enlace vence en %d minutos y solo puede usarse una vez.

Si no pediste este cambio, podés ignorar este correo.
`, toName, resetLink, minutes)

	htmlBody := fmt.Sprintf(`<html><body>
<p>Hola %s,</p>
<p>Recibimos una solicitud para restablecer tu contraseña.</p>
<p><a href="%s">Restablecer contraseña</a></p>
<p>El enlace vence en %d minutos y solo puede usarse una vez.</p>
<p>Si no pediste este cambio, podés ignorar este correo.</p>
</body></html>`, toName, resetLink, minutes)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		_, err := client.SendEmail(ctx, &sesv2.SendEmailInput{
			FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", fromName, fromEmail)),
			Destination: &types.Destination{
				ToAddresses: []string{toEmail},
			},
			Content: &types.EmailContent{
				Simple: &types.Message{
					Subject: &types.Content{
						Data:    aws.String(subject),
						Charset: aws.String("UTF-8"),
					},
					Body: &types.Body{
						Html: &types.Content{Data: aws.String(htmlBody), Charset: aws.String("UTF-8")},
						Text: &types.Content{Data: aws.String(textBody), Charset: aws.String("UTF-8")},
					},
				},
			},
		})
		if err != nil {
			log.Printf("[MAIL ERROR] gagal kirim reset password ke %s: %v", toEmail, err)
		}
	}()
}

package email

import "fmt"

// VerificationEmail builds the subject and body for an OTP message.
func VerificationEmail(name, code string) (subject, htmlBody string) {
	subject = "Your HelperBee verification code"
	htmlBody = fmt.Sprintf(`
		<div style="font-family: sans-serif; max-width: 480px;">
			<h2>Hi %s,</h2>
			<p>Your verification code is:</p>
			<p style="font-size: 28px; font-weight: bold; letter-spacing: 4px;">%s</p>
			<p>The code expires in 10 minutes. If you did not request it, ignore this email.</p>
		</div>`, name, code)
	return subject, htmlBody
}

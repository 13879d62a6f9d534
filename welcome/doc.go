// Package welcome implements the lead-welcome flow: a form submission comes
// in, a personalized welcome paragraph is produced (with a deterministic
// fallback when generation is unavailable), an HTML email is composed and
// sent, and a JSON outcome is returned for the frontend form to gate its
// success UI on.
//
// # Flow
//
// The HTTP handler owns the wire contract:
//
//   - 200 {"success": true, "emailId": "<id>"} once the email is accepted by
//     the provider (emailId omitted when the provider reported none)
//   - 400 {"error": "Invalid JSON input"} for undecodable bodies or missing
//     fields, before any outbound call
//   - 500 {"error": "<message>"} when the send fails
//
// The Service behind it runs the two outbound calls strictly in sequence:
// copy generation first (total, never fails outward), then the email send.
//
// # Usage
//
//	cw := copywriter.New(copywriter.WithProvider(provider))
//	svc := welcome.NewService(cw, sender)
//
//	r := chi.NewRouter()
//	r.Use(middleware.CORS())
//	r.Post("/welcome", welcome.Handler(svc, log))
//
// Email composition is exposed separately as ComposeWelcomeEmail for reuse
// and testing; submission values are escaped through html/template.
package welcome

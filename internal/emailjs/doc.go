// Package emailjs delivers contact form submissions through the EmailJS
// REST API.
//
// The public key is process-wide state: Init stores it once at startup and
// every Client reads it. There is no teardown and no re-initialisation.
//
//	if err := emailjs.Init(os.Getenv("CONTACTFORM_EMAILJS_PUBLIC_KEY")); err != nil {
//	    // the form still runs; submissions are refused with a diagnostic
//	}
//	client := emailjs.NewClient()
//	ctrl := contact.NewController(client)
//
// # Request Format
//
// Send posts JSON to the send endpoint:
//
//	{
//	  "service_id": "contact_service",
//	  "template_id": "contact_form",
//	  "user_id": "<public key>",
//	  "template_params": {"name": "...", "email": "...", "subject": "...", "message": "..."}
//	}
//
// A 200 response is success. Anything else becomes a *SendError classified
// by ErrorType. Sends are never retried.
package emailjs

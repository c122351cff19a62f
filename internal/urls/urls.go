package urls

// EmailJS documentation and dashboard pages.

// SendAPI documents the REST send endpoint, its JSON body and status codes.
const SendAPI = "https://www.emailjs.com/docs/rest-api/send/"

// PublicKey is the account page showing the public key.
const PublicKey = "https://dashboard.emailjs.com/admin/account"

// Templates is the dashboard page for editing email templates.
const Templates = "https://dashboard.emailjs.com/admin/templates"

// Security covers API access from non-browser applications.
const Security = "https://dashboard.emailjs.com/admin/account/security"

package mailer

import "embed"

const (
	MAX_RETRY = 3
)

// MailTemplateFile is a path inside the embedded templates directory.
type MailTemplateFile string

const (
	TemplateInspectionCompleted MailTemplateFile = "templates/inspection_completed.tmpl"
	TemplateCertificationIssued MailTemplateFile = "templates/certification_issued.tmpl"
	TemplateInspectionRejected  MailTemplateFile = "templates/inspection_rejected.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile MailTemplateFile, toEmail string, data any) (int, error)
}

// InspectionCompletedData fills the mail telling engineers a door is ready
// for a certification decision.
type InspectionCompletedData struct {
	RecipientName string `json:"recipientName"`
	SerialNumber  string `json:"serialNumber"`
	DrawingNumber string `json:"drawingNumber"`
	InspectorName string `json:"inspectorName"`
	ChecksTotal   int    `json:"checksTotal"`
	ChecksDone    int    `json:"checksDone"`
	DoorURL       string `json:"doorUrl"`
}

// CertificationIssuedData fills the mail sent to admins and the purchase
// order's client when a door is certified.
type CertificationIssuedData struct {
	RecipientName  string `json:"recipientName"`
	SerialNumber   string `json:"serialNumber"`
	DrawingNumber  string `json:"drawingNumber"`
	EngineerName   string `json:"engineerName"`
	CertifiedAt    string `json:"certifiedAt"`
	CertificateURL string `json:"certificateUrl"`
}

// InspectionRejectedData fills the mail telling inspectors a door came back
// from review and needs re-inspection.
type InspectionRejectedData struct {
	RecipientName string `json:"recipientName"`
	SerialNumber  string `json:"serialNumber"`
	DrawingNumber string `json:"drawingNumber"`
	EngineerName  string `json:"engineerName"`
	Reason        string `json:"reason"`
	DoorURL       string `json:"doorUrl"`
}

package mailer

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
)

// Every template must parse from the embedded FS and render both its subject
// and body blocks with its data struct.
func TestTemplatesRender(t *testing.T) {
	tests := []struct {
		name         string
		templateFile MailTemplateFile
		data         any
		wantInBody   string
	}{
		{
			name:         "inspection completed",
			templateFile: TemplateInspectionCompleted,
			data: InspectionCompletedData{
				RecipientName: "Sam",
				SerialNumber:  "V1-18-0206",
				DrawingNumber: "S206",
				InspectorName: "Robin",
				ChecksTotal:   10,
				ChecksDone:    10,
				DoorURL:       "http://localhost:8080/doors/abc",
			},
			wantInBody: "V1-18-0206",
		},
		{
			name:         "certification issued",
			templateFile: TemplateCertificationIssued,
			data: CertificationIssuedData{
				RecipientName:  "Alex",
				SerialNumber:   "V2-15-0031",
				DrawingNumber:  "S031",
				EngineerName:   "Kim",
				CertifiedAt:    "1 September 2026",
				CertificateURL: "http://localhost:8080/certificates/xyz",
			},
			wantInBody: "certified by Kim",
		},
		{
			name:         "inspection rejected",
			templateFile: TemplateInspectionRejected,
			data: InspectionRejectedData{
				RecipientName: "Robin",
				SerialNumber:  "V1-20-0042",
				DrawingNumber: "S042",
				EngineerName:  "Kim",
				Reason:        "hinge seal leaking at 400 kPa",
				DoorURL:       "http://localhost:8080/doors/def",
			},
			wantInBody: "hinge seal leaking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := template.ParseFS(FS, string(tt.templateFile))
			if err != nil {
				t.Fatalf("failed to parse %s: %v", tt.templateFile, err)
			}

			subject := new(bytes.Buffer)
			if err := tmpl.ExecuteTemplate(subject, "subject", tt.data); err != nil {
				t.Fatalf("failed to execute subject: %v", err)
			}
			if subject.Len() == 0 {
				t.Error("subject rendered empty")
			}

			body := new(bytes.Buffer)
			if err := tmpl.ExecuteTemplate(body, "body", tt.data); err != nil {
				t.Fatalf("failed to execute body: %v", err)
			}
			if !strings.Contains(body.String(), tt.wantInBody) {
				t.Errorf("body does not contain %q", tt.wantInBody)
			}
		})
	}
}

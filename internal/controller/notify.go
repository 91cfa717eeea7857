package controller

import (
	"context"
	"fmt"

	"github.com/sealteck/doortrack/internal/constant"
	"github.com/sealteck/doortrack/internal/mailer"
	"github.com/sealteck/doortrack/internal/model"
	"github.com/sealteck/doortrack/internal/queue"
)

// Notification publishing runs after the lifecycle transaction has committed.
// A failed publish is logged and swallowed: the lifecycle outcome stands and
// the mail is simply lost, never the other way around.

func (b *baseController) doorURL(doorId string) string {
	return fmt.Sprintf("%s/doors/%s", b.app.Config.AppURL, doorId)
}

func (b *baseController) publishNotification(job queue.NotificationJobPayload, err error) {
	if err != nil {
		b.app.Logger.Warnf("Failed to build notification job: %v", err)
		return
	}
	if b.app.Queue == nil {
		b.app.Logger.Debug("Notification queue not configured, dropping job")
		return
	}
	if err := b.app.Queue.PublishNotificationJob(job); err != nil {
		b.app.Logger.Warnf("Failed to publish notification job for %s: %v", job.ToEmail, err)
	}
}

// notifyInspectionCompleted tells every engineer the door is waiting for a
// certification decision.
func (b *baseController) notifyInspectionCompleted(ctx context.Context, door *model.Door, inspection *model.Inspection, checksDone, checksTotal int) {
	engineers, err := b.app.Repository.User.ListByRole(ctx, nil, constant.RoleEngineer)
	if err != nil {
		b.app.Logger.Warnf("Failed to resolve engineers for notification: %v", err)
		return
	}

	for _, engineer := range engineers {
		job, err := queue.NewInspectionCompletedJob(engineer.Email, mailer.InspectionCompletedData{
			RecipientName: engineer.FullName(),
			SerialNumber:  door.SerialNumber,
			DrawingNumber: door.DrawingNumber,
			InspectorName: inspection.Inspector.FullName(),
			ChecksTotal:   checksTotal,
			ChecksDone:    checksDone,
			DoorURL:       b.doorURL(door.ID),
		})
		b.publishNotification(job, err)
	}
}

// notifyCertificationIssued tells the admins and the purchase order's client
// the certificate is ready.
func (b *baseController) notifyCertificationIssued(ctx context.Context, door *model.Door, certification *model.Certification, certificateURL string) {
	recipients := map[string]string{}

	admins, err := b.app.Repository.User.ListByRole(ctx, nil, constant.RoleAdmin)
	if err != nil {
		b.app.Logger.Warnf("Failed to resolve admins for notification: %v", err)
	} else {
		for _, admin := range admins {
			recipients[admin.Email] = admin.FullName()
		}
	}

	if po, err := b.app.Repository.PurchaseOrder.GetById(ctx, nil, door.PoID); err == nil {
		recipients[po.ClientEmail] = po.ClientName
	} else {
		b.app.Logger.Warnf("Failed to resolve purchase order client for notification: %v", err)
	}

	for email, name := range recipients {
		job, err := queue.NewCertificationIssuedJob(email, mailer.CertificationIssuedData{
			RecipientName:  name,
			SerialNumber:   door.SerialNumber,
			DrawingNumber:  door.DrawingNumber,
			EngineerName:   certification.Engineer.FullName(),
			CertifiedAt:    certification.CertifiedAt.Format("2 January 2006"),
			CertificateURL: certificateURL,
		})
		b.publishNotification(job, err)
	}
}

// notifyInspectionRejected tells every inspector the door needs re-inspection.
func (b *baseController) notifyInspectionRejected(ctx context.Context, door *model.Door, engineerName, reason string) {
	inspectors, err := b.app.Repository.User.ListByRole(ctx, nil, constant.RoleInspector)
	if err != nil {
		b.app.Logger.Warnf("Failed to resolve inspectors for notification: %v", err)
		return
	}

	for _, inspector := range inspectors {
		job, err := queue.NewInspectionRejectedJob(inspector.Email, mailer.InspectionRejectedData{
			RecipientName: inspector.FullName(),
			SerialNumber:  door.SerialNumber,
			DrawingNumber: door.DrawingNumber,
			EngineerName:  engineerName,
			Reason:        reason,
			DoorURL:       b.doorURL(door.ID),
		})
		b.publishNotification(job, err)
	}
}

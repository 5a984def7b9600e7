package worker

import (
	"github.com/spec-kit/talent-bridge/internal/service"
)

// StartAuditRecorder wires the audit recorder into the dispatcher.
func StartAuditRecorder(recorder *service.AuditRecorder) {
	if recorder == nil {
		return
	}
	recorder.RegisterHandlers()
}

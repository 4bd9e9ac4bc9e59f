package dberrors

import (
	"strconv"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/infra/prometheus"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const logIDPrefix = "db-error-"

type Mapper struct {
	logger *logrus.Logger
	now    func() time.Time
}

func NewMapper(logger *logrus.Logger) *Mapper {
	return &Mapper{
		logger: logger,
		now:    time.Now,
	}
}

// WrapError logs the raw failure under a fresh correlation id and returns
// the client-facing form. Only the log id links the two.
func (m *Mapper) WrapError(raw RawError) *ClientError {
	info := LogInfo{
		LogID:     logIDPrefix + uuid.NewString(),
		Timestamp: m.now().UTC().Format(time.RFC3339Nano),
	}

	code, _ := raw.DBCode()
	m.logger.WithFields(logrus.Fields{
		"logId":     info.LogID,
		"timestamp": info.Timestamp,
		"message":   raw.Error(),
		"dbCode":    code,
		"stack":     raw.Stack(),
	}).Error("database error")

	mapped := lookup(code)
	prometheus.DatabaseErrors.WithLabelValues(mapped.kind.String(), strconv.Itoa(code)).Inc()

	return (&Error{
		Kind:    mapped.kind,
		Message: mapped.message,
		Code:    mapped.status,
		Log:     info,
	}).ToClient()
}

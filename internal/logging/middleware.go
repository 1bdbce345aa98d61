package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds caller supplied ids; longer ones are replaced.
const maxRequestIDLength = 64

// Middleware gives every huma operation its own LogData and logs the
// Start and Complete (or Error, for 5xx responses) lines around it.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := ctx.Operation().OperationID
		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = newRequestID()
		}

		logData := NewLogData(log)
		logData.AddData("requestID", requestID)
		logData.AddData("method", ctx.Method())
		logData.AddData("path", ctx.URL().Path)
		ctx.SetHeader(RequestIDHeader, requestID)

		logData.Log().Infof("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= 500 {
			logData.Log().Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}

// Логирование HTTP-запросов и request id
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-users-items-api/internal/shared/logger"
)

// RequestIDHeader заголовок, в котором приходит/уходит id запроса.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

type ResponseWriter struct {
	http.ResponseWriter
	Status int
	Size   int
}

func (w *ResponseWriter) WriteHeader(Status int) {
	w.Status = Status
	w.ResponseWriter.WriteHeader(Status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	Size, err := w.ResponseWriter.Write(b)
	w.Size += Size
	return Size, err
}

// ContextWithRequestID кладёт id запроса в контекст.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext достаёт id запроса, "" если его нет.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LoggerMiddleware логирует каждый запрос: метод, uri, статус, размер ответа,
// длительность. Заодно выдаёт request id (или берёт входящий X-Request-ID)
// и возвращает его в ответе.
func LoggerMiddleware(log *logger.HTTPLogger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := r.Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, reqID)

			wr := &ResponseWriter{ResponseWriter: w}
			next.ServeHTTP(wr, r.WithContext(ContextWithRequestID(r.Context(), reqID)))

			// 204 и прочие ответы без Write/WriteHeader
			if wr.Status == 0 {
				wr.Status = http.StatusOK
			}

			duration := time.Since(start).Seconds() * 1000
			log.LogRequest(reqID, r.Method, r.RequestURI, wr.Status, wr.Size, duration)
		})
	}
}

package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/BatlZlat/gornostyle-sub004/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery ставится после RequestID: паника попадает в лог вместе с request_id,
// клиент получает обычный ответ об ошибке.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			msg := fmt.Sprint(rec)
			c.Set("error", "panic: "+msg)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", c.GetString(requestIDKey)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.String("error", msg),
				logger.String("stack", string(debug.Stack())),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		}()

		c.Next()
	}
}

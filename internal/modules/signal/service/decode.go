package service

import (
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"breakout_api/internal/models"
	"breakout_api/pkg/logger"
)

var registerTagNames sync.Once

// useJSONFieldNames: в ошибках валидатора price_data[1].high вместо PriceData[1].High.
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// decodeRequest читает и проверяет тело запроса. Любая ошибка имеет тип *models.ValidationError.
func decodeRequest(c *gin.Context, maxBody int64) (*models.SignalRequest, error) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, models.NewValidationError(fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit))
		}
		return nil, models.NewValidationError("Failed to read request body")
	}

	var req models.SignalRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		logger.Debug("%v", errors.Wrap(err, "decode generate-signal body"))
		return nil, models.NewValidationError("Request body must be a JSON object with symbol and price_data")
	}

	// отдельное сообщение для пустого списка свечей, до общей валидации
	if len(req.PriceData) == 0 {
		return nil, models.NewValidationError(models.EmptyPriceDataMsg)
	}

	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return nil, models.NewValidationError(describeValidation(err))
	}

	for i, candle := range req.PriceData {
		if err := candle.Validate(); err != nil {
			return nil, models.NewValidationError(fmt.Sprintf("price_data[%d].%s", i, err.Error()))
		}
	}

	return &req, nil
}

func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := fe.Namespace()
	// срезаем имя корневой структуры: SignalRequest.price_data[0].open
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s character(s) long", field, fe.Param())
		}
		return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %q validation", field, fe.Tag())
	}
}

package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

// UnixMillisecondsToTime converts a unix-milliseconds value as it arrives in
// a decoded payload (integer, float, json.Number, or numeric string) into a
// UTC time. Anything non-convertible fails with a MalformedTimestamp error
// naming the integration.
func UnixMillisecondsToTime(value any, webhook string) (time.Time, error) {
	milliseconds, ok := toMilliseconds(value)
	if !ok {
		return time.Time{}, NewError(
			fmt.Sprintf("The %s webhook expects time in milliseconds.", webhook),
			goerrors.CategoryBadInput,
			http.StatusBadRequest,
			WebhookErrorMalformedTimestamp,
			map[string]any{"webhook": webhook},
		)
	}
	seconds := milliseconds / 1000
	nanos := (milliseconds % 1000) * int64(time.Millisecond)
	return time.Unix(seconds, nanos).UTC(), nil
}

func toMilliseconds(value any) (int64, bool) {
	switch typed := value.(type) {
	case int:
		return int64(typed), true
	case int32:
		return int64(typed), true
	case int64:
		return typed, true
	case uint:
		return int64(typed), true
	case uint32:
		return int64(typed), true
	case uint64:
		return int64(typed), true
	case float32:
		return int64(typed), true
	case float64:
		return int64(typed), true
	case json.Number:
		parsed, err := typed.Float64()
		if err != nil {
			return 0, false
		}
		return int64(parsed), true
	case string:
		parsed, err := strconv.ParseFloat(typed, 64)
		if err != nil {
			return 0, false
		}
		return int64(parsed), true
	default:
		return 0, false
	}
}

package bot

import (
	"errors"
	"fmt"
	"log"

	tele "gopkg.in/telebot.v4"
)

// Logger logs one line per incoming update.
func Logger(l *log.Logger) tele.MiddlewareFunc {
	if l == nil {
		l = log.Default()
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			l.Printf("chat=%d %s", chatID(c), describe(c))
			err := next(c)
			if err != nil {
				l.Printf("chat=%d error: %v", chatID(c), err)
			}
			return err
		}
	}
}

// Recover turns a handler panic into an error so one bad update does not
// take the poller down.
func Recover(onError func(error, tele.Context)) tele.MiddlewareFunc {
	if onError == nil {
		onError = func(err error, _ tele.Context) {
			log.Printf("recovered from panic: %v", err)
		}
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					switch x := r.(type) {
					case error:
						err = x
					case string:
						err = errors.New(x)
					default:
						err = fmt.Errorf("panic: %v", x)
					}
					onError(err, c)
				}
			}()
			return next(c)
		}
	}
}

func chatID(c tele.Context) int64 {
	if c == nil || c.Chat() == nil {
		return 0
	}
	return c.Chat().ID
}

func describe(c tele.Context) string {
	if c == nil {
		return "-"
	}
	if cb := c.Callback(); cb != nil {
		return fmt.Sprintf("callback %s|%s", cb.Unique, cb.Data)
	}
	if m := c.Message(); m != nil {
		return fmt.Sprintf("message %q", m.Text)
	}
	return "update"
}

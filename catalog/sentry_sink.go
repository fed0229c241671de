package catalog

import (
	"encoding/json"
	"errors"
	"log"

	raven "github.com/getsentry/raven-go"

	"code.cloudfoundry.org/lager"
)

// SentrySink forwards error log lines to Sentry.
type SentrySink struct {
}

func NewSentrySink(dsn, env string) *SentrySink {
	raven.SetDSN(dsn)
	raven.SetEnvironment(env)

	return &SentrySink{}
}

func (s *SentrySink) Log(line lager.LogFormat) {
	if line.LogLevel < lager.ERROR {
		return
	}

	if errStr, ok := line.Data["error"].(string); ok {
		delete(line.Data, "message")
		delete(line.Data, "error")

		tags := map[string]string{}
		for k, v := range line.Data {
			bs, err := json.Marshal(v)
			if err != nil {
				log.Printf("error marshaling JSON: %s", err)
				continue
			}

			tags[k] = string(bs)
		}

		e := raven.NewException(errors.New(errStr), raven.NewStacktrace(1, 3, []string{}))
		e.Type = line.Message
		raven.DefaultClient.Capture(raven.NewPacket(errStr, e), tags)
	}
}

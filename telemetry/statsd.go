// Package telemetry wraps the statsd client used for tick metrics. It hides
// the datadog dependency so callers only see a few helpers.
package telemetry

import (
	"time"

	ddstatsd "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
)

var client ddstatsd.ClientInterface = &ddstatsd.NoOpClient{}

func Client() ddstatsd.ClientInterface {
	return client
}

// SetClient replaces the global client. Passing nil restores the no-op client.
func SetClient(c ddstatsd.ClientInterface) {
	if c == nil {
		c = &ddstatsd.NoOpClient{}
	}
	client = c
}

// EmitTickStat records the time elapsed since start for a loop stage.
func EmitTickStat(start time.Time, stage string) {
	duration := time.Since(start)
	err := Client().Timing("tick", duration, []string{"stage:" + stage}, 1)
	if err != nil {
		log.Logger.Warn().Msgf("failed to emit tick stat: %v", err)
	}
}

// EmitCatchUp records how many simulation steps ran in one loop iteration
// and the lag left over afterwards.
func EmitCatchUp(steps int, lag time.Duration) {
	if err := Client().Gauge("catch_up_steps", float64(steps), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit catch up stat: %v", err)
	}
	if err := Client().Gauge("lag_seconds", lag.Seconds(), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit lag stat: %v", err)
	}
}

// EmitEntityCount records the number of live entities.
func EmitEntityCount(n int) {
	if err := Client().Gauge("entities", float64(n), nil, 1); err != nil {
		log.Logger.Warn().Msgf("failed to emit entity count: %v", err)
	}
}

// Init replaces the global client with one sending to address.
func Init(address string, tags []string) error {
	if address == "" {
		return eris.New("address must not be empty")
	}
	opts := []ddstatsd.Option{
		// The statsd namespace is the prefix of all metrics
		ddstatsd.WithNamespace("korin"),
	}
	if len(tags) > 0 {
		opts = append(opts, ddstatsd.WithTags(tags))
	}

	newClient, err := ddstatsd.New(address, opts...)
	if err != nil {
		return eris.Wrap(err, "failed to create statsd client")
	}
	client = newClient
	return nil
}

// Close flushes and closes the global client.
func Close() error {
	err := client.Close()
	client = &ddstatsd.NoOpClient{}
	return err
}

package repository

import (
	"context"
	"fmt"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"

	"hvac_hub/internal/models"
)

const influxMeasurement = "reading"

// ReadingInflux mirrors readings into an InfluxDB v2 bucket.
type ReadingInflux struct {
	client influxdb2.Client
	write  api.WriteAPIBlocking
}

var _ ReadingSink = (*ReadingInflux)(nil)

func NewReadingInflux(url, token, org, bucket string) *ReadingInflux {
	client := influxdb2.NewClient(url, token)
	return &ReadingInflux{
		client: client,
		write:  client.WriteAPIBlocking(org, bucket),
	}
}

// Append writes the reading as one point, synchronously.
func (r *ReadingInflux) Append(ctx context.Context, rd models.Reading) error {
	p := influxdb2.NewPoint(influxMeasurement,
		map[string]string{"source": string(models.OriginDevice)},
		map[string]interface{}{
			"temperature": rd.Temperature,
			"humidity":    rd.Humidity,
		},
		rd.CapturedAt,
	)
	if err := r.write.WritePoint(ctx, p); err != nil {
		return fmt.Errorf("influx write: %w", err)
	}
	return nil
}

func (r *ReadingInflux) Close() {
	r.client.Close()
}

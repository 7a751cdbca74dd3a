package votations

import (
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/votations")
var meter = otel.Meter("services/votations")

var formsFetched, _ = meter.Int64Counter("forms_fetched")
var formsFailed, _ = meter.Int64Counter("forms_failed")
var titlesFailed, _ = meter.Int64Counter("titles_failed")

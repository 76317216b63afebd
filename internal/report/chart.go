package report

// ChartData is the generic shape consumed by charting frontends and the
// chart rasterizer: labels and values aligned index for index.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

// Dataset is a single series of values.
type Dataset struct {
	Values []float64 `json:"values"`
}

// ToChartData reshapes aggregation buckets into chart data. It is a
// pure reshape that preserves the bucket order exactly.
func ToChartData(buckets []Bucket) ChartData {
	labels := make([]string, len(buckets))
	values := make([]float64, len(buckets))

	for i, bucket := range buckets {
		labels[i] = bucket.Label
		values[i] = bucket.Amount.InexactFloat64()
	}

	return ChartData{
		Labels:   labels,
		Datasets: []Dataset{{Values: values}},
	}
}

package detection

// Summary aggregates a detection list.
type Summary struct {
	ObjectCounts  map[Class]int `json:"objectCounts"`
	TotalObjects  int           `json:"totalObjects"`
	AvgConfidence float64       `json:"avgConfidence"`
}

// Summarize counts detections per class and averages their confidence.
// An empty list has an average of zero.
func Summarize(detections []Detection) Summary {
	s := Summary{ObjectCounts: make(map[Class]int)}
	var total float64
	for _, d := range detections {
		s.ObjectCounts[d.ClassName]++
		total += d.Confidence
	}
	s.TotalObjects = len(detections)
	if s.TotalObjects > 0 {
		s.AvgConfidence = total / float64(s.TotalObjects)
	}
	return s
}

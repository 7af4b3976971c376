package geometry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IsClockwise applies the signed-area test over the closed polygon. A
// negative sum means counter-clockwise; zero counts as clockwise.
func IsClockwise(points []Point) bool {
	sum := 0.0
	for i := range points {
		start := points[len(points)-1]
		if i > 0 {
			start = points[i-1]
		}
		end := points[i]
		sum += (end.X - start.X) * (end.Y + start.Y)
	}
	return sum >= 0
}

// Orient returns a clockwise copy of points.
func Orient(points []Point) []Point {
	res := make([]Point, len(points))
	copy(res, points)
	if !IsClockwise(res) {
		Reverse(res)
	}
	return res
}

// Reverse reverses points in place.
func Reverse(points []Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}

// PointsFromArrays zips two coordinate slices into a clockwise point list.
func PointsFromArrays(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("x and y coordinates must be the same length: %d != %d", len(xs), len(ys))
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return Orient(points), nil
}

// ImportPoints reads two-column delimited coordinates and returns them in
// clockwise order.
func ImportPoints(r io.Reader, sep rune) ([]Point, error) {
	xs, ys, err := ImportTuples(r, sep)
	if err != nil {
		return nil, err
	}
	return PointsFromArrays(xs, ys)
}

// ImportTuples reads two numeric columns as-is, e.g. experimental cl(alpha)
// or cp(x) data.
func ImportTuples(r io.Reader, sep rune) ([]float64, []float64, error) {
	reader := csv.NewReader(r)
	reader.Comma = sep
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var xs, ys []float64
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		record = trimRecord(record)
		if len(record) != 2 {
			row, _ := reader.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: data must contain only two columns, got %d", row, len(record))
		}
		if line == 1 {
			record[0] = strings.TrimPrefix(record[0], "\ufeff")
		}
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			row, _ := reader.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: %w", row, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			row, _ := reader.FieldPos(1)
			return nil, nil, fmt.Errorf("line %d: %w", row, err)
		}
		xs = append(xs, x)
		ys = append(ys, y)
	}
	return xs, ys, nil
}

// 去掉行尾分隔符产生的空字段
func trimRecord(record []string) []string {
	for len(record) > 0 && strings.TrimSpace(record[len(record)-1]) == "" {
		record = record[:len(record)-1]
	}
	for i := range record {
		record[i] = strings.TrimSpace(record[i])
	}
	return record
}

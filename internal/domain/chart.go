package domain

import "time"

type Point struct {
	X time.Time `json:"x"`
	Y int64     `json:"y"`
}

type Dataset struct {
	Label  string  `json:"label"`
	Color  string  `json:"borderColor"`
	Fill   bool    `json:"fill"`
	Points []Point `json:"data"`
}

// Axis são os limites e o passo do eixo vertical de um gráfico
type Axis struct {
	Min  int64 `json:"min"`
	Max  int64 `json:"max"`
	Step int64 `json:"stepSize"`
}

type ChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type TimeScale struct {
	Unit          string `json:"unit"`
	DisplayFormat string `json:"displayFormat"`
}

type ChartScale struct {
	Type  string     `json:"type,omitempty"`
	Label string     `json:"label"`
	Time  *TimeScale `json:"time,omitempty"`
	Ticks *Axis      `json:"ticks,omitempty"`
}

type ChartOptions struct {
	Title  ChartTitle `json:"title"`
	XAxis  ChartScale `json:"xAxis"`
	YAxis  ChartScale `json:"yAxis"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

type ChartData struct {
	Datasets []Dataset `json:"datasets"`
}

// ChartConfig é a descrição declarativa de um gráfico de linha
type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type PieSlice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type PieConfig struct {
	Type   string     `json:"type"`
	Title  string     `json:"title"`
	Slices []PieSlice `json:"slices"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
}

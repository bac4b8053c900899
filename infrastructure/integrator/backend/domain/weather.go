package backenddomain

type WeatherDescription struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type WeatherData struct {
	Location struct {
		Name    string  `json:"name"`
		Country string  `json:"country"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	} `json:"location"`
	Current struct {
		Temp       float64              `json:"temp"`
		FeelsLike  float64              `json:"feels_like"`
		Humidity   float64              `json:"humidity"`
		Pressure   float64              `json:"pressure"`
		Visibility float64              `json:"visibility"`
		WindSpeed  float64              `json:"wind_speed"`
		WindDeg    float64              `json:"wind_deg"`
		Weather    []WeatherDescription `json:"weather"`
	} `json:"current"`
	Timestamp int64 `json:"timestamp"`
}

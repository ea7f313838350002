package ports

// CurrentPanel holds the formatted current-conditions fields
type CurrentPanel struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Temperature string `json:"temperature"`
	IconURL     string `json:"iconUrl"`
	FeelsLike   string `json:"feelsLike"`
	Humidity    string `json:"humidity"`
	RainChance  string `json:"rainChance"`
	WindSpeed   string `json:"windSpeed"`
}

// DailyRow is one row of the daily forecast block
type DailyRow struct {
	Day     string `json:"day"`
	High    string `json:"high"`
	Low     string `json:"low"`
	IconURL string `json:"iconUrl"`
}

// HourlyRow is one row of the hourly forecast block. Group is the pagination tag it belongs to.
type HourlyRow struct {
	Hour        string `json:"hour"`
	Temperature string `json:"temperature"`
	IconURL     string `json:"iconUrl"`
	Group       int    `json:"group"`
}

// DisplaySurface is the fixed set of display regions the dashboard writes into
type DisplaySurface interface {
	SetCurrent(panel CurrentPanel)
	SetDailyRows(rows []DailyRow)
	SetHourlyRows(rows []HourlyRow)
	// ShowHourlyGroup reveals only the hourly rows tagged with group and marks its indicator active
	ShowHourlyGroup(group int)
	// ShowView makes exactly one of the "daily" and "hourly" blocks visible
	ShowView(view string)
	Notify(message string)
}

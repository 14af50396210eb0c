package model

import "time"

// Store is one physical store in the directory. Code is the short
// token used to associate uploaded filenames with the store.
type Store struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// StoreReport is one store's report for one month together with its
// upload bookkeeping.
type StoreReport struct {
	Store         Store     `json:"store"`
	Data          Report    `json:"data"`
	LastUpdated   time.Time `json:"lastUpdated"`
	FileCount     int       `json:"fileCount"`
	UploadHistory []string  `json:"uploadHistory,omitempty"`
}

// MonthlyData is one month across all stores.
type MonthlyData struct {
	Month          string        `json:"month"`
	Stores         []StoreReport `json:"stores"`
	LastUpdated    time.Time     `json:"lastUpdated"`
	TotalFileCount int           `json:"totalFileCount"`
}

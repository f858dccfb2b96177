package model

type Brand struct {
	ID          int64
	Name        string
	CountryCode string
}

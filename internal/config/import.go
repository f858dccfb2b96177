package config

type Import struct {
	// File is the path of the .xlsx workbook holding the brands and categories sheets.
	File string `env:"IMPORT_FILE,required"`
}

package model

// Technician is a worker identity that can be assigned tasks.
// The roster is fixed configuration; task flow never mutates it.
type Technician struct {
	ID   string `mapstructure:"id" yaml:"id" json:"id"`
	Name string `mapstructure:"name" yaml:"name" json:"name"`
}

package script

// Meta holds the header metadata of a script file.
type Meta struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Script is a Lua binding script stored on disk.
type Script struct {
	ID       string `json:"id"` // filename stem (no .lua)
	Meta     Meta   `json:"meta"`
	Code     string `json:"code"` // Lua source without the header line
	FilePath string `json:"-"`
}

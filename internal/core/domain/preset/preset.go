/*
Package preset defines the named benchmark size lists loaded from
configuration.
*/
package preset

/*
Preset is a named list of input sizes for a benchmark batch, e.g.
"quick" -> [10, 100, 1000]. This is a core domain entity.
*/
type Preset struct {
	Name  string `yaml:"name"`
	Sizes []int  `yaml:"sizes"`
}

package core

// Config is built once at startup from the command line and handed to the
// batch runner.
type Config struct {
	// Dir is the directory scanned for inputs and receiving outputs.
	Dir string

	// MobileWidth and DesktopWidth are the raw width options. They are
	// parsed per transcode so that a bad value fails each attempt rather
	// than the whole run.
	MobileWidth  string
	DesktopWidth string
}

// Variant is one rendition requested for every image.
type Variant struct {
	Width string
	Tag   string
}

// Variants returns the renditions in processing order: mobile first.
func (c Config) Variants() []Variant {
	return []Variant{
		{Width: c.MobileWidth, Tag: MobileTag},
		{Width: c.DesktopWidth, Tag: DesktopTag},
	}
}

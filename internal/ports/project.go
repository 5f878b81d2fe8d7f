package ports

// ProjectLocator finds a colorselect project root starting from an arbitrary directory.
type ProjectLocator interface {
	FindRoot(startDir string) (string, error)
}

type ProjectInitializer interface {
	Init(root string, force bool) error
}

package config

// manifestDTO represents the structure of the sketchbuild.yaml manifest file.
type manifestDTO struct {
	Package     packageDTO     `yaml:"package"`
	Interpreter interpreterDTO `yaml:"interpreter"`
	Build       buildDTO       `yaml:"build"`
	Extensions  []extensionDTO `yaml:"extensions"`
}

// packageDTO carries the distribution metadata stamped into every build.
type packageDTO struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	License     string `yaml:"license"`
}

// interpreterDTO selects the Python interpreter used for introspection.
type interpreterDTO struct {
	Python string `yaml:"python"`
}

// buildDTO holds the optional manifest-level build settings.
type buildDTO struct {
	CXXStandard int    `yaml:"cxx_standard"`
	ScratchDir  string `yaml:"scratch_dir"`
	InstallRoot string `yaml:"install_root"`
}

// extensionDTO represents a native extension definition in the manifest.
type extensionDTO struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
}

package scene

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScene []byte

// Description is a scene file: the light, the floor and the collidable objects.
type Description struct {
	Light   LightDescription    `yaml:"light"`
	Floor   ObjectDescription   `yaml:"floor"`
	Objects []ObjectDescription `yaml:"objects"`
}

// ObjectDescription places one object. Exactly one of Geometry or Model is set.
type ObjectDescription struct {
	Name string `yaml:"name"`
	// Geometry names a shared vertex range (floor, pyramid, cube)
	Geometry string `yaml:"geometry"`
	// Model is an OBJ path
	Model     string    `yaml:"model"`
	Texture   string    `yaml:"texture"`
	Position  Vec3      `yaml:"position"`
	Scale     *Vec3     `yaml:"scale"`
	Color     Vec3      `yaml:"color"`
	Rotation  *Rotation `yaml:"rotation"`
	Collision *Vec3     `yaml:"collision"`
}

// Rotation is an angle in degrees around an axis
type Rotation struct {
	Angle float32 `yaml:"angle"`
	Axis  Vec3    `yaml:"axis"`
}

// LightDescription is the point light and its lamp proxy
type LightDescription struct {
	ObjectDescription `yaml:",inline"`

	Ambient   Vec3    `yaml:"ambient"`
	Diffuse   Vec3    `yaml:"diffuse"`
	Specular  Vec3    `yaml:"specular"`
	Constant  float32 `yaml:"constant"`
	Linear    float32 `yaml:"linear"`
	Quadratic float32 `yaml:"quadratic"`
}

// Vec3 accepts either a three element sequence or a single scalar that is
// used for every component.
type Vec3 mgl32.Vec3

// UnmarshalYAML implements yaml.Unmarshaler for Vec3.
func (v *Vec3) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float32
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("line %d: invalid vector %q: %w", value.Line, value.Value, err)
		}
		*v = Vec3{f, f, f}
		return nil
	case yaml.SequenceNode:
		var fs []float32
		if err := value.Decode(&fs); err != nil {
			return fmt.Errorf("line %d: invalid vector: %w", value.Line, err)
		}
		if len(fs) != 3 {
			return fmt.Errorf("line %d: vector needs 3 components, got %d", value.Line, len(fs))
		}
		*v = Vec3{fs[0], fs[1], fs[2]}
		return nil
	default:
		return fmt.Errorf("line %d: vector must be a number or a sequence", value.Line)
	}
}

func (v Vec3) Vec() mgl32.Vec3 { return mgl32.Vec3(v) }

// ParseDescription decodes and validates a scene document.
func ParseDescription(data []byte) (*Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}

	// Apply defaults
	if desc.Light.Geometry == "" && desc.Light.Model == "" {
		desc.Light.Geometry = "cube"
	}
	if desc.Light.Constant == 0 {
		desc.Light.Constant = 1
	}
	if desc.Floor.Geometry == "" && desc.Floor.Model == "" {
		desc.Floor.Geometry = "floor"
	}

	if err := desc.Light.validate("light"); err != nil {
		return nil, err
	}
	if err := desc.Floor.validate("floor"); err != nil {
		return nil, err
	}
	for i := range desc.Objects {
		o := &desc.Objects[i]
		if o.Name == "" {
			o.Name = fmt.Sprintf("object%d", i)
		}
		if err := o.validate(o.Name); err != nil {
			return nil, err
		}
	}
	return &desc, nil
}

// LoadDescription reads a scene file from disk.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	return ParseDescription(data)
}

// DefaultDescription is the built-in demo layout.
func DefaultDescription() *Description {
	desc, err := ParseDescription(defaultScene)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded default scene is invalid: %v", err))
	}
	return desc
}

func (o *ObjectDescription) validate(name string) error {
	switch {
	case o.Geometry != "" && o.Model != "":
		return fmt.Errorf("%s: geometry and model are mutually exclusive", name)
	case o.Geometry == "" && o.Model == "":
		return fmt.Errorf("%s: needs a geometry or a model", name)
	}
	return nil
}

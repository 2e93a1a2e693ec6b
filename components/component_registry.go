package components

import (
	"reflect"
	"strings"

	"github.com/rotisserie/eris"

	"ebiten-korin/ecs"
)

// componentFactories maps string component names to constructors
var componentFactories = map[string]func() ecs.Component{
	"InputStream": func() ecs.Component { return NewInputStreamComponent() },
	"Transform":   func() ecs.Component { return NewTransformComponent(0, 0, 0) },
	"Velocity":    func() ecs.Component { return NewVelocityComponent(0, 0) },
	"Physics":     func() ecs.Component { return NewPhysicsComponent(0, 0, 0, 0) },
	"Render":      func() ecs.Component { return NewRenderComponent(0, 0, "") },
}

// lookupFactory finds a factory by name. The lookup is case-insensitive
func lookupFactory(name string) (string, func() ecs.Component, bool) {
	// Try exact match first
	if f, exists := componentFactories[name]; exists {
		return name, f, true
	}

	// Try case-insensitive match
	for compName, f := range componentFactories {
		if strings.EqualFold(compName, name) {
			return compName, f, true
		}
	}

	return "", nil, false
}

// NewComponentByName creates a zero-valued component of the named kind
func NewComponentByName(name string) (ecs.Component, bool) {
	_, f, ok := lookupFactory(name)
	if !ok {
		return nil, false
	}
	return f(), true
}

// GetComponentIDByName returns the ComponentTypeID for a given component name string
// The lookup is case-insensitive
func GetComponentIDByName(types *ecs.TypeRegistry, name string) (ecs.ComponentTypeID, bool) {
	_, f, ok := lookupFactory(name)
	if !ok {
		return 0, false
	}
	return types.Lookup(reflect.TypeOf(f()))
}

// ComponentNames returns the names accepted by NewComponentByName
func ComponentNames() []string {
	names := make([]string, 0, len(componentFactories))
	for name := range componentFactories {
		names = append(names, name)
	}
	return names
}

// GetComponentProperty returns the value of a property in a component
// Uses reflection to access component properties dynamically
func GetComponentProperty(comp interface{}, propertyName string) (interface{}, error) {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	// Check if the property exists
	if val.Kind() != reflect.Struct {
		return nil, eris.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() || !field.CanInterface() {
		return nil, eris.Errorf("property not found: %s", propertyName)
	}

	// Return the property value
	return field.Interface(), nil
}

// SetComponentProperty sets the value of a property in a component
// Uses reflection to modify component properties dynamically
func SetComponentProperty(comp interface{}, propertyName string, value interface{}) error {
	val := reflect.ValueOf(comp)

	// Handle pointer types
	if val.Kind() != reflect.Ptr {
		return eris.Errorf("component must be a pointer to struct: %T", comp)
	}
	val = val.Elem()

	// Check if the property exists
	if val.Kind() != reflect.Struct {
		return eris.Errorf("component is not a struct: %T", comp)
	}

	field := val.FieldByName(propertyName)
	if !field.IsValid() || propertyName == "Base" {
		return eris.Errorf("property not found: %s", propertyName)
	}

	// Check if field is settable
	if !field.CanSet() {
		return eris.Errorf("property cannot be set: %s", propertyName)
	}

	// Set the property value based on its type
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Handle integer types
		var intVal int64
		switch v := value.(type) {
		case int:
			intVal = int64(v)
		case int64:
			intVal = v
		case float64:
			intVal = int64(v)
		default:
			return eris.Errorf("cannot convert %T to int64 for property %s", value, propertyName)
		}
		field.SetInt(intVal)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		// Handle unsigned integer types, including GameAction bit sets
		var uintVal uint64
		switch v := value.(type) {
		case uint:
			uintVal = uint64(v)
		case uint64:
			uintVal = v
		case GameAction:
			uintVal = uint64(v)
		case string:
			action, err := parseActionList(v)
			if err != nil {
				return eris.Wrapf(err, "property %s", propertyName)
			}
			uintVal = uint64(action)
		case int:
			if v < 0 {
				return eris.Errorf("cannot convert negative value to uint for property %s", propertyName)
			}
			uintVal = uint64(v)
		case float64:
			if v < 0 {
				return eris.Errorf("cannot convert negative value to uint for property %s", propertyName)
			}
			uintVal = uint64(v)
		default:
			return eris.Errorf("cannot convert %T to uint64 for property %s", value, propertyName)
		}
		field.SetUint(uintVal)

	case reflect.Float32, reflect.Float64:
		// Handle float types
		var floatVal float64
		switch v := value.(type) {
		case float64:
			floatVal = v
		case float32:
			floatVal = float64(v)
		case int:
			floatVal = float64(v)
		default:
			return eris.Errorf("cannot convert %T to float64 for property %s", value, propertyName)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		// Handle boolean type
		boolVal, ok := value.(bool)
		if !ok {
			return eris.Errorf("cannot convert %T to bool for property %s", value, propertyName)
		}
		field.SetBool(boolVal)

	case reflect.String:
		// Handle string type
		strVal, ok := value.(string)
		if !ok {
			return eris.Errorf("cannot convert %T to string for property %s", value, propertyName)
		}
		field.SetString(strVal)

	default:
		return eris.Errorf("unsupported property type: %s for %s", field.Kind(), propertyName)
	}

	return nil
}

// parseActionList parses names such as "MoveLeft|Jump" into a bit set
func parseActionList(s string) (GameAction, error) {
	var actions GameAction
	for _, name := range strings.Split(s, "|") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		a, err := ParseGameAction(name)
		if err != nil {
			return ActionNone, err
		}
		actions |= a
	}
	return actions, nil
}

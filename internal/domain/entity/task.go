package entity

import "encoding/json"

// TaskName is an ACS task verb.
type TaskName string

const (
	TaskSetParameterValues TaskName = "setParameterValues"
	TaskRefreshObject      TaskName = "refreshObject"
	TaskReboot             TaskName = "reboot"
)

// XSD types used in parameter writes.
const (
	XSDString  = "xsd:string"
	XSDBoolean = "xsd:boolean"
)

// ParameterValue is one write inside a setParameterValues task.
type ParameterValue struct {
	Path  string
	Value string
	Type  string
}

// MarshalJSON encodes the ACS tuple form [path, value, type].
func (p ParameterValue) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{p.Path, p.Value, p.Type})
}

// Task is queued against one device.
type Task struct {
	Name            TaskName         `json:"name"`
	ParameterValues []ParameterValue `json:"parameterValues,omitempty"`
	ObjectName      *string          `json:"objectName,omitempty"`
}

// NewSetParameterValuesTask writes one or more parameters.
func NewSetParameterValuesTask(values ...ParameterValue) Task {
	return Task{Name: TaskSetParameterValues, ParameterValues: values}
}

// NewRefreshObjectTask re-reads a subtree; an empty object name refreshes everything.
func NewRefreshObjectTask(objectName string) Task {
	return Task{Name: TaskRefreshObject, ObjectName: &objectName}
}

// NewRebootTask restarts the device.
func NewRebootTask() Task {
	return Task{Name: TaskReboot}
}

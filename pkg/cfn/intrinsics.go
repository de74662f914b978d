package cfn

// Ref returns a {"Ref": ...} expression.
func Ref(logicalID string) map[string]interface{} {
	return map[string]interface{}{"Ref": logicalID}
}

// GetAtt returns an {"Fn::GetAtt": [...]} expression.
func GetAtt(logicalID, attribute string) map[string]interface{} {
	return map[string]interface{}{"Fn::GetAtt": []string{logicalID, attribute}}
}

// Sub returns an {"Fn::Sub": ...} expression.
func Sub(s string) map[string]interface{} {
	return map[string]interface{}{"Fn::Sub": s}
}

// Select returns an {"Fn::Select": [...]} expression.
func Select(index int, list interface{}) map[string]interface{} {
	return map[string]interface{}{"Fn::Select": []interface{}{index, list}}
}

// GetAZs returns an {"Fn::GetAZs": ""} expression for the current region.
func GetAZs() map[string]interface{} {
	return map[string]interface{}{"Fn::GetAZs": ""}
}

// Join returns an {"Fn::Join": [...]} expression.
func Join(delimiter string, values ...interface{}) map[string]interface{} {
	return map[string]interface{}{"Fn::Join": []interface{}{delimiter, values}}
}

// ImportValue returns an {"Fn::ImportValue": ...} expression.
func ImportValue(name string) map[string]interface{} {
	return map[string]interface{}{"Fn::ImportValue": name}
}

// Tag is a resource tag.
type Tag struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

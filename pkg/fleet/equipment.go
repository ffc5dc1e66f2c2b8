package fleet

import (
	"strings"

	"accuport.cloud/fleet-service/pkg/models"
)

type equipmentRule struct {
	tokens    []string
	equipment models.EquipmentType
}

// Rules are probed in order and the first matching token wins. The boiler
// tokens must come before the cooling ones: "HT" and "LT" are short enough
// to appear inside unrelated point names.
var equipmentRules = []equipmentRule{
	{tokens: []string{"HOTWELL", "HOT WELL"}, equipment: models.EquipmentHotwell},
	{tokens: []string{"AUX BOILER", "AB1", "AB2", "EGE", "COMPOSITE BOILER", "CB "}, equipment: models.EquipmentAuxBoilerEGE},
	{tokens: []string{"COOLING", "HT", "LT"}, equipment: models.EquipmentCoolingWater},
	{tokens: []string{"POTABLE", "DRINKING"}, equipment: models.EquipmentPotableWater},
	{tokens: []string{"SEWAGE", "GREY", "GRAY"}, equipment: models.EquipmentSewage},
}

// ClassifyEquipment maps a free-form sampling point name to the equipment
// type keying the parameter limits table. Names that match no rule come
// back as EquipmentUnknown and carry no limits.
func ClassifyEquipment(samplingPointName string) models.EquipmentType {
	name := strings.ToUpper(strings.TrimSpace(samplingPointName))
	for _, rule := range equipmentRules {
		for _, token := range rule.tokens {
			if strings.Contains(name, token) {
				return rule.equipment
			}
		}
	}
	return models.EquipmentUnknown
}

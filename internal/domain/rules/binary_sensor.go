package rules

import (
	"ha-entity-engine/internal/domain/model"
)

// alertingDeviceClasses get ColorAlerting instead of the plain active color.
var alertingDeviceClasses = states(
	"battery",
	"carbon_monoxide",
	"gas",
	"heat",
	"lock",
	"moisture",
	"problem",
	"safety",
	"smoke",
	"tamper",
)

// binarySensorIcons holds the (off, on) icon pair per device class.
var binarySensorIcons = map[string][2]Icon{
	"battery":          {IconBattery, IconBatteryOutline},
	"battery_charging": {IconBattery, IconBatteryCharging},
	"carbon_monoxide":  {IconSmokeDetector, IconSmokeDetectorAlert},
	"cold":             {IconThermometer, IconSnowflake},
	"connectivity":     {IconCloseNetwork, IconCheckNetwork},
	"door":             {IconDoorClosed, IconDoorOpen},
	"garage_door":      {IconGarage, IconGarageOpen},
	"gas":              {IconCheckCircle, IconAlertCircle},
	"problem":          {IconCheckCircle, IconAlertCircle},
	"safety":           {IconCheckCircle, IconAlertCircle},
	"tamper":           {IconCheckCircle, IconAlertCircle},
	"heat":             {IconThermometer, IconFire},
	"light":            {IconBrightness5, IconBrightness7},
	"lock":             {IconLock, IconLockOpen},
	"moisture":         {IconWaterOff, IconWater},
	"motion":           {IconMotionSensorOff, IconMotionSensor},
	"occupancy":        {IconHomeOutline, IconHome},
	"presence":         {IconHomeOutline, IconHome},
	"opening":          {IconSquare, IconSquareOutline},
	"plug":             {IconPowerPlugOff, IconPowerPlug},
	"power":            {IconPowerPlugOff, IconPowerPlug},
	"running":          {IconStop, IconPlay},
	"smoke":            {IconSmokeVariant, IconSmokeVariantAlert},
	"sound":            {IconMusicNoteOff, IconMusicNote},
	"update":           {IconPackage, IconPackageUp},
	"vibration":        {IconCropPortrait, IconVibrate},
	"window":           {IconWindowClosed, IconWindowOpen},
}

func binarySensorRule() *DomainRule {
	return &DomainRule{
		Domain:      "binary_sensor",
		DefaultIcon: IconRadioboxBlank,
		IconFunc: func(state, deviceClass string, _ model.Attributes) (Icon, bool) {
			pair, ok := binarySensorIcons[deviceClass]
			if !ok {
				pair = [2]Icon{IconRadioboxBlank, IconCheckboxMarked}
			}
			if state == model.StateOff {
				return pair[0], true
			}
			return pair[1], true
		},
		ColorFunc: func(_, deviceClass string, _ model.Attributes) (ColorToken, bool) {
			if alertingDeviceClasses.Contains(deviceClass) {
				return ColorAlerting, true
			}
			return ColorActive, true
		},
	}
}

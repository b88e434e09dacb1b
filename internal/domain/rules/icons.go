package rules

const (
	IconAccount             Icon = "mdi:account"
	IconAccountArrowRight   Icon = "mdi:account-arrow-right"
	IconAirFilter           Icon = "mdi:air-filter"
	IconAirHumidifier       Icon = "mdi:air-humidifier"
	IconAirHumidifierOff    Icon = "mdi:air-humidifier-off"
	IconAlert               Icon = "mdi:alert"
	IconAlertCircle         Icon = "mdi:alert-circle"
	IconAppleSafari         Icon = "mdi:apple-safari"
	IconArrowCollapseHoriz  Icon = "mdi:arrow-collapse-horizontal"
	IconArrowDownBox        Icon = "mdi:arrow-down-box"
	IconArrowSplitVertical  Icon = "mdi:arrow-split-vertical"
	IconArrowUpBox          Icon = "mdi:arrow-up-box"
	IconAudioVideo          Icon = "mdi:audio-video"
	IconAudioVideoOff       Icon = "mdi:audio-video-off"
	IconBell                Icon = "mdi:bell"
	IconBellRing            Icon = "mdi:bell-ring"
	IconBlinds              Icon = "mdi:blinds-horizontal"
	IconBlindsClosed        Icon = "mdi:blinds-horizontal-closed"
	IconBluetooth           Icon = "mdi:bluetooth"
	IconBluetoothConnect    Icon = "mdi:bluetooth-connect"
	IconBookmark            Icon = "mdi:bookmark"
	IconBrightness5         Icon = "mdi:brightness-5"
	IconBrightness7         Icon = "mdi:brightness-7"
	IconBullhorn            Icon = "mdi:bullhorn"
	IconButton              Icon = "mdi:gesture-tap-button"
	IconCalendar            Icon = "mdi:calendar"
	IconCalendarClock       Icon = "mdi:calendar-clock"
	IconCash                Icon = "mdi:cash"
	IconCast                Icon = "mdi:cast"
	IconCastConnected       Icon = "mdi:cast-connected"
	IconCastOff             Icon = "mdi:cast-off"
	IconChatSleep           Icon = "mdi:chat-sleep"
	IconCheckCircle         Icon = "mdi:check-circle"
	IconCheckCircleOutline  Icon = "mdi:check-circle-outline"
	IconCheckNetwork        Icon = "mdi:check-network-outline"
	IconCheckboxMarked      Icon = "mdi:checkbox-marked-circle"
	IconCircle              Icon = "mdi:circle"
	IconCircleSlash         Icon = "mdi:circle-slash"
	IconClipboardList       Icon = "mdi:clipboard-list"
	IconClock               Icon = "mdi:clock"
	IconCloseCircleOutline  Icon = "mdi:close-circle-outline"
	IconCloseNetwork        Icon = "mdi:close-network-outline"
	IconCog                 Icon = "mdi:cog"
	IconCommentAlert        Icon = "mdi:comment-alert"
	IconCounter             Icon = "mdi:counter"
	IconCropPortrait        Icon = "mdi:crop-portrait"
	IconCurrentAC           Icon = "mdi:current-ac"
	IconCurtains            Icon = "mdi:curtains"
	IconCurtainsClosed      Icon = "mdi:curtains-closed"
	IconDoorClosed          Icon = "mdi:door-closed"
	IconDoorOpen            Icon = "mdi:door-open"
	IconEvent               Icon = "mdi:eye-check"
	IconEye                 Icon = "mdi:eye"
	IconFan                 Icon = "mdi:fan"
	IconFanOff              Icon = "mdi:fan-off"
	IconFire                Icon = "mdi:fire"
	IconFlash               Icon = "mdi:flash"
	IconFlower              Icon = "mdi:flower"
	IconFormTextbox         Icon = "mdi:form-textbox"
	IconForumOutline        Icon = "mdi:forum-outline"
	IconGarage              Icon = "mdi:garage"
	IconGarageOpen          Icon = "mdi:garage-open"
	IconGate                Icon = "mdi:gate"
	IconGateArrowRight      Icon = "mdi:gate-arrow-right"
	IconGateOpen            Icon = "mdi:gate-open"
	IconGauge               Icon = "mdi:gauge"
	IconGoogleAssistant     Icon = "mdi:google-assistant"
	IconGroup               Icon = "mdi:google-circles-communities"
	IconHome                Icon = "mdi:home"
	IconHomeAssistant       Icon = "mdi:home-assistant"
	IconHomeAutomation      Icon = "mdi:home-automation"
	IconHomeOutline         Icon = "mdi:home-outline"
	IconImage               Icon = "mdi:image"
	IconImageFilterFrames   Icon = "mdi:image-filter-frames"
	IconInputButton         Icon = "mdi:button-pointer"
	IconLanConnect          Icon = "mdi:lan-connect"
	IconLanDisconnect       Icon = "mdi:lan-disconnect"
	IconLightbulb           Icon = "mdi:lightbulb"
	IconLightbulbOff        Icon = "mdi:lightbulb-off"
	IconLightningBolt       Icon = "mdi:lightning-bolt"
	IconListBulleted        Icon = "mdi:format-list-bulleted"
	IconLock                Icon = "mdi:lock"
	IconLockAlert           Icon = "mdi:lock-alert"
	IconLockClock           Icon = "mdi:lock-clock"
	IconLockOpen            Icon = "mdi:lock-open"
	IconLockOpenVariant     Icon = "mdi:lock-open-variant"
	IconMapMarkerRadius     Icon = "mdi:map-marker-radius"
	IconMeterGas            Icon = "mdi:meter-gas"
	IconMicrophoneMessage   Icon = "mdi:microphone-message"
	IconMolecule            Icon = "mdi:molecule"
	IconMoleculeCO          Icon = "mdi:molecule-co"
	IconMoleculeCO2         Icon = "mdi:molecule-co2"
	IconMotionSensor        Icon = "mdi:motion-sensor"
	IconMotionSensorOff     Icon = "mdi:motion-sensor-off"
	IconMusicNote           Icon = "mdi:music-note"
	IconMusicNoteOff        Icon = "mdi:music-note-off"
	IconPackage             Icon = "mdi:package"
	IconPackageDown         Icon = "mdi:package-down"
	IconPackageUp           Icon = "mdi:package-up"
	IconPalette             Icon = "mdi:palette"
	IconPlay                Icon = "mdi:play"
	IconPower               Icon = "mdi:power"
	IconPowerPlug           Icon = "mdi:power-plug"
	IconPowerPlugOff        Icon = "mdi:power-plug-off"
	IconRadioboxBlank       Icon = "mdi:radiobox-blank"
	IconRayVertex           Icon = "mdi:ray-vertex"
	IconRemote              Icon = "mdi:remote"
	IconRestart             Icon = "mdi:restart"
	IconRobot               Icon = "mdi:robot"
	IconRobotConfused       Icon = "mdi:robot-confused"
	IconRobotMower          Icon = "mdi:robot-mower"
	IconRobotOff            Icon = "mdi:robot-off"
	IconRobotVacuum         Icon = "mdi:robot-vacuum"
	IconScene               Icon = "mdi:palette"
	IconScriptText          Icon = "mdi:script-text"
	IconSecurity            Icon = "mdi:security"
	IconShield              Icon = "mdi:shield"
	IconShieldAirplane      Icon = "mdi:shield-airplane"
	IconShieldHome          Icon = "mdi:shield-home"
	IconShieldLock          Icon = "mdi:shield-lock"
	IconShieldMoon          Icon = "mdi:shield-moon"
	IconShieldOff           Icon = "mdi:shield-off"
	IconShieldOutline       Icon = "mdi:shield-outline"
	IconSineWave            Icon = "mdi:sine-wave"
	IconSmokeDetector       Icon = "mdi:smoke-detector"
	IconSmokeDetectorAlert  Icon = "mdi:smoke-detector-alert"
	IconSmokeVariant        Icon = "mdi:smoke-detector-variant"
	IconSmokeVariantAlert   Icon = "mdi:smoke-detector-variant-alert"
	IconSnowflake           Icon = "mdi:snowflake"
	IconSpeaker             Icon = "mdi:speaker"
	IconSpeakerMessage      Icon = "mdi:speaker-message"
	IconSpeakerOff          Icon = "mdi:speaker-off"
	IconSpeakerPause        Icon = "mdi:speaker-pause"
	IconSpeakerPlay         Icon = "mdi:speaker-play"
	IconSquare              Icon = "mdi:square"
	IconSquareOutline       Icon = "mdi:square-outline"
	IconStarFourPoints      Icon = "mdi:star-four-points"
	IconStop                Icon = "mdi:stop"
	IconSunSnowflake        Icon = "mdi:sun-snowflake-variant"
	IconTelevision          Icon = "mdi:television"
	IconTelevisionOff       Icon = "mdi:television-off"
	IconTelevisionPause     Icon = "mdi:television-pause"
	IconTelevisionPlay      Icon = "mdi:television-play"
	IconThermometer         Icon = "mdi:thermometer"
	IconThermostat          Icon = "mdi:thermostat"
	IconThermostatAuto      Icon = "mdi:thermostat-auto"
	IconTimerOutline        Icon = "mdi:timer-outline"
	IconToggleSwitch        Icon = "mdi:toggle-switch"
	IconToggleSwitchOff     Icon = "mdi:toggle-switch-off"
	IconToggleVariant       Icon = "mdi:toggle-switch-variant"
	IconToggleVariantOff    Icon = "mdi:toggle-switch-variant-off"
	IconValve               Icon = "mdi:valve"
	IconValveClosed         Icon = "mdi:valve-closed"
	IconValveOpen           Icon = "mdi:valve-open"
	IconVibrate             Icon = "mdi:vibrate"
	IconVideo               Icon = "mdi:video"
	IconVideoOff            Icon = "mdi:video-off"
	IconWater               Icon = "mdi:water"
	IconWaterBoiler         Icon = "mdi:water-boiler"
	IconWaterBoilerOff      Icon = "mdi:water-boiler-off"
	IconWaterOff            Icon = "mdi:water-off"
	IconWaterPercent        Icon = "mdi:water-percent"
	IconWeatherNight        Icon = "mdi:weather-night"
	IconWeatherPartlyCloudy Icon = "mdi:weather-partly-cloudy"
	IconWhiteBalanceSunny   Icon = "mdi:white-balance-sunny"
	IconWifi                Icon = "mdi:wifi"
	IconWindowClosed        Icon = "mdi:window-closed"
	IconWindowOpen          Icon = "mdi:window-open"
	IconWindowShutter       Icon = "mdi:window-shutter"
	IconWindowShutterOpen   Icon = "mdi:window-shutter-open"
)

// fallbackDomainIcons is used when a domain has no state specific icon.
var fallbackDomainIcons = map[string]Icon{
	"ai_task":                 IconStarFourPoints,
	"air_quality":             IconAirFilter,
	"alert":                   IconAlert,
	"automation":              IconRobot,
	"calendar":                IconCalendar,
	"climate":                 IconThermostat,
	"configurator":            IconCog,
	"conversation":            IconForumOutline,
	"counter":                 IconCounter,
	"date":                    IconCalendar,
	"datetime":                IconCalendarClock,
	"demo":                    IconHomeAssistant,
	"device_tracker":          IconAccount,
	"google_assistant":        IconGoogleAssistant,
	"group":                   IconGroup,
	"homeassistant":           IconHomeAssistant,
	"homekit":                 IconHomeAutomation,
	"image_processing":        IconImageFilterFrames,
	"image":                   IconImage,
	"input_boolean":           IconToggleSwitch,
	"input_button":            IconInputButton,
	"input_datetime":          IconCalendarClock,
	"input_number":            IconRayVertex,
	"input_select":            IconListBulleted,
	"input_text":              IconFormTextbox,
	"lawn_mower":              IconRobotMower,
	"light":                   IconLightbulb,
	"notify":                  IconCommentAlert,
	"number":                  IconRayVertex,
	"persistent_notification": IconBell,
	"person":                  IconAccount,
	"plant":                   IconFlower,
	"proximity":               IconAppleSafari,
	"remote":                  IconRemote,
	"scene":                   IconPalette,
	"schedule":                IconCalendarClock,
	"script":                  IconScriptText,
	"select":                  IconListBulleted,
	"sensor":                  IconEye,
	"simple_alarm":            IconBell,
	"siren":                   IconBullhorn,
	"stt":                     IconMicrophoneMessage,
	"sun":                     IconWhiteBalanceSunny,
	"text":                    IconFormTextbox,
	"time":                    IconClock,
	"timer":                   IconTimerOutline,
	"todo":                    IconClipboardList,
	"tts":                     IconSpeakerMessage,
	"vacuum":                  IconRobotVacuum,
	"wake_word":               IconChatSleep,
	"weather":                 IconWeatherPartlyCloudy,
	"zone":                    IconMapMarkerRadius,
}

package clusters

import "zigbee-go-zcl/internal/zcl"

// Standard returns the built-in cluster definitions in id order.
func Standard() []zcl.ClusterDef {
	return []zcl.ClusterDef{
		// General (0x0000–0x00FF)
		Basic,                          // 0x0000
		PowerConfiguration,             // 0x0001
		DeviceTemperatureConfiguration, // 0x0002
		Identify,                       // 0x0003
		Groups,                         // 0x0004
		Scenes,                         // 0x0005
		OnOff,                          // 0x0006
		OnOffSwitchConfiguration,       // 0x0007
		LevelControl,                   // 0x0008
		Alarms,                         // 0x0009
		Time,                           // 0x000A
		RSSILocation,                   // 0x000B
		AnalogInput,                    // 0x000C
		AnalogOutput,                   // 0x000D
		AnalogValue,                    // 0x000E
		BinaryInput,                    // 0x000F
		BinaryOutput,                   // 0x0010
		BinaryValue,                    // 0x0011
		MultistateInput,                // 0x0012
		MultistateOutput,               // 0x0013
		MultistateValue,                // 0x0014
		Commissioning,                  // 0x0015
		OTAUpgrade,                     // 0x0019
		PowerProfile,                   // 0x001A
		ApplianceControl,               // 0x001B
		PollControl,                    // 0x0020
		GreenPower,                     // 0x0021

		// Closures (0x0100–0x01FF)
		ShadeConfiguration, // 0x0100
		DoorLock,           // 0x0101
		WindowCovering,     // 0x0102
		BarrierControl,     // 0x0103

		// HVAC (0x0200–0x02FF)
		PumpConfigurationAndControl,          // 0x0200
		Thermostat,                           // 0x0201
		FanControl,                           // 0x0202
		ThermostatUserInterfaceConfiguration, // 0x0204

		// Lighting (0x0300–0x03FF)
		ColorControl,         // 0x0300
		BallastConfiguration, // 0x0301

		// Measurement & Sensing (0x0400–0x04FF)
		IlluminanceMeasurement,  // 0x0400
		IlluminanceLevelSensing, // 0x0401
		TemperatureMeasurement,  // 0x0402
		PressureMeasurement,     // 0x0403
		FlowMeasurement,         // 0x0404
		RelativeHumidity,        // 0x0405
		OccupancySensing,        // 0x0406
		SoilMoisture,            // 0x0408
		PHMeasurement,           // 0x0409
		CarbonMonoxide,          // 0x040C
		CarbonDioxide,           // 0x040D
		PM25Measurement,         // 0x042A
		FormaldehydeMeasurement, // 0x042B

		// Security & Safety (0x0500–0x05FF)
		IASZone, // 0x0500
		IASACE,  // 0x0501
		IASWD,   // 0x0502

		Metering, // 0x0702

		// Home Automation (0x0B00–0x0BFF)
		ApplianceIdentification,  // 0x0B00
		MeterIdentification,      // 0x0B01
		ApplianceEventsAndAlerts, // 0x0B02
		ApplianceStatistics,      // 0x0B03
		ElectricalMeasurement,    // 0x0B04
		Diagnostics,              // 0x0B05

		TouchlinkCommissioning, // 0x1000
	}
}

// Register adds every built-in definition to r.
func Register(r *zcl.Registry) error {
	for _, c := range Standard() {
		if _, err := r.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Package dcim implements device, rack and interface operations.
//
// # Components
//
//   - DeviceAdapter: reconcile adapter for device names, serials and asset tags.
//     It is also the Mutator used to rename and bulk delete devices.
//   - Service: fetches devices, racks and interfaces and builds list tables.
//     Locate and LocateSerials fetch the device collection once and match the
//     requested identifiers against it.
//   - Tables: DeviceTable, LocateTable, SerialTable, SerialLocateTable,
//     AssetTagTable, RackTable and InterfaceTable.
package dcim

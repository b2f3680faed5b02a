// Package dataset holds the embedded sales transactions the pipeline runs on.
//
// The data is a fixed CSV snapshot with two intentionally malformed Quantity
// cells ("NA") that exercise the cleaning stage's coercion path. It is the
// only input the application has; nothing is read from disk or the network.
package dataset

// Header is the expected CSV header row, in column order.
var Header = []string{"Date", "Product", "Quantity", "Price", "Region"}

// SalesCSV is the raw comma-separated sales snapshot, header included.
const SalesCSV = `Date,Product,Quantity,Price,Region
2023-01-01,Laptop,2,1200.00,North
2023-01-01,Mouse,5,25.50,North
2023-01-02,Keyboard,3,75.00,South
2023-01-03,Monitor,1,300.00,East
2023-01-04,Laptop,1,1200.00,West
2023-01-05,Mouse,NA,25.50,North
2023-01-05,Keyboard,2,75.00,South
2023-01-06,Laptop,1,1200.00,East
2023-01-07,Monitor,2,300.00,West
2023-01-08,Mouse,3,25.50,North
2023-01-09,Keyboard,NA,75.00,South
2023-01-10,Laptop,1,1200.00,East
2023-01-11,Webcam,4,50.00,North
2023-01-12,Headphones,2,150.00,South
2023-01-13,Webcam,1,50.00,East
2023-01-14,Headphones,3,150.00,West
2023-01-15,Laptop,1,1200.00,North
2023-01-16,Mouse,5,25.50,South
2023-01-17,Keyboard,2,75.00,East
2023-01-18,Monitor,1,300.00,West
2023-01-19,Laptop,1,1200.00,North
2023-01-20,Mouse,3,25.50,South
2023-01-21,Keyboard,2,75.00,East
2023-01-22,Monitor,1,300.00,West
`

package dto

// TimeLayout es el formato con el que las marcas de tiempo salen en las
// respuestas JSON.
const TimeLayout = "2006-01-02, 15:04:05"

// FechaLayout es el formato dd-MM-yyyy de las fechas de negocio.
const FechaLayout = "02-01-2006"

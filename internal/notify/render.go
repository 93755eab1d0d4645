package notify

import (
	"fmt"
	"html/template"
	"strings"
)

// Notification is a rendered, ready-to-send operator email.
type Notification struct {
	VehicleID    int64
	CustomerName string
	Subject      string
	HTML         string
}

var emailTmpl = template.Must(template.New("quote").Parse(`<div style="font-family: Arial, sans-serif; max-width: 650px; margin: 20px auto; border: 1px solid #e0e0e0; border-radius: 12px; overflow: hidden; background: white;">
  <div style="background: linear-gradient(120deg, #1976D2, #0D47A1); color: white; padding: 24px; text-align: center;">
    <h2 style="margin: 0; font-size: 24px;">Nueva Solicitud de Cotización</h2>
  </div>

  <div style="padding: 24px;">
    <h3 style="color: #1976D2; border-bottom: 2px solid #eee; padding-bottom: 10px;">Datos del Cliente</h3>
    <p style="margin: 10px 0;"><strong>Nombre:</strong> {{.CustomerName}}</p>
    <p style="margin: 10px 0;"><strong>Teléfono:</strong> {{.Phone}}</p>
    <p style="margin: 10px 0;"><strong>Fecha de servicio:</strong> {{.Date}}</p>
    <p style="margin: 10px 0;"><strong>Comentario:</strong></p>
    <div style="background: #f8f9fa; padding: 14px; border-radius: 8px; border-left: 4px solid #1976D2; color: #444;">{{.Comment}}</div>
  </div>

  <div style="padding: 24px; background: #f5f9ff;">
    <h3 style="color: #0D47A1; border-bottom: 2px solid #bbdefb; padding-bottom: 10px;">Información del Vehículo</h3>
    <p style="margin: 10px 0;"><strong>Marca:</strong> {{.Brand}}</p>
    <p style="margin: 10px 0;"><strong>Modelo:</strong> {{.Model}}</p>
    <p style="margin: 10px 0;"><strong>Año:</strong> {{.Year}}</p>
    <p style="margin: 10px 0;"><strong>Placa:</strong> {{.Plate}}</p>
    <p style="margin: 10px 0;"><strong>Tipo:</strong> {{.Type}}</p>

    <h4 style="margin-top: 16px; color: #0D47A1;">Foto del vehículo:</h4>
    {{if .HasPhoto}}<img src="{{.PhotoURL}}" alt="Foto del vehículo" style="max-width: 100%; border-radius: 8px; margin-top: 10px;" />{{else}}<p style="color: #888;">{{.PhotoURL}}</p>{{end}}
  </div>

  <div style="text-align: center; padding: 16px; background: #e3f2fd; color: #0D47A1; font-size: 14px;">
    ID del vehículo: <strong>{{.VehicleID}}</strong>
  </div>
</div>
`))

// Render produces the subject and HTML body for a payload.
func Render(p Payload) (Notification, error) {
	var b strings.Builder
	if err := emailTmpl.Execute(&b, p); err != nil {
		return Notification{}, fmt.Errorf("notify: render: %w", err)
	}
	return Notification{
		VehicleID:    p.VehicleID,
		CustomerName: p.CustomerName,
		Subject:      fmt.Sprintf("Nueva cotización: %s", p.CustomerName),
		HTML:         b.String(),
	}, nil
}

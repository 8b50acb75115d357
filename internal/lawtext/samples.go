package lawtext

// Curated sample excerpts used when neither the cache nor an ingested corpus
// has text for a law. Kept in the original Spanish of the statutes.
var sampleTexts = map[string]string{
	"LEY_21521": `
La Ley 21.521 (Ley Fintec) regula a los Proveedores de Servicios Financieros (PSF) y crea un marco general para el uso de plataformas tecnológicas en servicios financieros.

Entre otras materias, establece obligaciones en torno a:
- Gobierno corporativo y gestión de riesgos.
- Requisitos de transparencia y entrega de información a clientes.
- Protección de datos personales y seguridad de la información.
- Coordinación con la CMF y otras autoridades.

En materia de datos personales, la ley exige que los PSF adopten medidas razonables para proteger la confidencialidad, integridad y disponibilidad de la información de los clientes, así como respetar los principios de finalidad, proporcionalidad y seguridad en el tratamiento de datos.
`,

	"LEY_19496": `
La Ley 19.496 sobre Protección de los Derechos de los Consumidores regula la relación entre proveedores y consumidores, incluyendo el deber de información veraz y oportuna, la responsabilidad por daños y la prohibición de cláusulas abusivas.

En relación con la información de los consumidores, el proveedor debe:
- Entregar información veraz, suficiente y fácilmente accesible.
- Proteger los datos personales y no utilizarlos para finalidades distintas a las informadas.
- Implementar mecanismos para que el consumidor pueda ejercer sus derechos de información, rectificación, cancelación u oposición, según corresponda.

La infracción de estas obligaciones puede dar lugar a sanciones administrativas y acciones de indemnización de perjuicios.
`,

	"LEY_20393": `
La Ley 20.393 establece la responsabilidad penal de las personas jurídicas en Chile, por determinados delitos como lavado de activos, financiamiento del terrorismo, cohecho y otros.

Para efectos de cumplimiento, la ley:
- Exige la adopción e implementación efectiva de modelos de prevención de delitos.
- Define la necesidad de políticas, procedimientos y controles internos.
- Establece la figura del encargado de prevención de delitos.

Cuando el modelo de prevención considera el tratamiento de datos personales (por ejemplo, en monitoreo de operaciones, debida diligencia u otros factores de riesgo), la entidad debe respetar la normativa aplicable en materia de protección de datos, garantizando confidencialidad, integridad y acceso restringido.
`,

	"LEY_19886": `
La Ley 19.886 regula las bases sobre contratos administrativos de suministro y prestación de servicios, estableciendo el marco de compras públicas en Chile.

Dentro de este contexto, pueden manejarse datos personales de oferentes, contratistas y funcionarios, por lo que las entidades deben observar las normas de protección de datos, limitando el uso de la información a los fines asociados a la contratación pública.
`,

	"LEY_19913": `
La Ley 19.913 crea la Unidad de Análisis Financiero (UAF) y establece obligaciones de reporte para sujetos obligados en materia de lavado de activos y financiamiento del terrorismo.

El tratamiento de datos personales en este contexto se vincula a:
- Reporte de operaciones sospechosas.
- Conservación de antecedentes.
- Intercambio de información con autoridades competentes.

Dicho tratamiento debe armonizarse con los principios de necesidad, proporcionalidad y seguridad de la información.
`,
}

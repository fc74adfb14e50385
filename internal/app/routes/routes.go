package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/davidrv/permanencia/internal/app/controllers"
)

// RegistroControllers bundles the per-table record controllers so SetupRouter
// keeps a manageable signature.
type RegistroControllers struct {
	Tutorias       *controllers.RegistroController
	Asesorias      *controllers.RegistroController
	Orientaciones  *controllers.RegistroController
	Comedores      *controllers.RegistroController
	Apoyos         *controllers.RegistroController
	Talleres       *controllers.RegistroController
	Seguimientos   *controllers.RegistroController
	Intervenciones *controllers.RegistroController
	Remisiones     *controllers.RegistroController
	Asistencias    *controllers.RegistroController
	Actas          *controllers.RegistroController
}

// SetupRouter configures all application routes.
func SetupRouter(
	router *gin.Engine,
	estudianteController *controllers.EstudianteController,
	programaController *controllers.ProgramaController,
	servicioController *controllers.ServicioController,
	usuarioController *controllers.UsuarioController,
	estadisticasController *controllers.EstadisticasController,
	registros *RegistroControllers,
) {
	v1 := router.Group("/api/v1")

	estudiantes := v1.Group("/estudiantes")
	{
		estudiantes.GET("", estudianteController.GetEstudiantes)
		estudiantes.GET("/:id", estudianteController.GetEstudiante)
		estudiantes.GET("/documento/:documento", estudianteController.GetEstudianteByDocumento)
		estudiantes.POST("", estudianteController.CreateEstudiante)
		estudiantes.PUT("/:id", estudianteController.UpdateEstudiante)
		estudiantes.DELETE("/:id", estudianteController.DeleteEstudiante)
	}

	programas := v1.Group("/programas")
	{
		programas.GET("", programaController.GetProgramas)
		programas.GET("/activos", programaController.GetProgramasActivos)
		programas.GET("/:id", programaController.GetPrograma)
		programas.POST("", programaController.CreatePrograma)
		programas.PUT("/:id", programaController.UpdatePrograma)
		programas.DELETE("/:id", programaController.DeletePrograma)
	}

	servicios := v1.Group("/servicios")
	{
		servicios.GET("", servicioController.GetServicios)
		servicios.GET("/activos", servicioController.GetServiciosActivos)
		servicios.GET("/:id", servicioController.GetServicio)
		servicios.POST("", servicioController.CreateServicio)
		servicios.PUT("/:id", servicioController.UpdateServicio)
		servicios.DELETE("/:id", servicioController.DeleteServicio)
	}

	usuarios := v1.Group("/usuarios")
	{
		usuarios.GET("", usuarioController.GetUsuarios)
		usuarios.GET("/:id", usuarioController.GetUsuario)
		usuarios.POST("", usuarioController.CreateUsuario)
		usuarios.PUT("/:id", usuarioController.UpdateUsuario)
		usuarios.DELETE("/:id", usuarioController.DeleteUsuario)
	}

	// One identical endpoint set per permanencia record table.
	tablas := map[string]*controllers.RegistroController{
		"/tutorias-academicas":        registros.Tutorias,
		"/asesorias-psicologicas":     registros.Asesorias,
		"/orientaciones-vocacionales": registros.Orientaciones,
		"/comedores-universitarios":   registros.Comedores,
		"/apoyos-socioeconomicos":     registros.Apoyos,
		"/talleres-habilidades":       registros.Talleres,
		"/seguimientos-academicos":    registros.Seguimientos,
		"/intervenciones-grupales":    registros.Intervenciones,
		"/remisiones-psicologicas":    registros.Remisiones,
		"/asistencias-actividades":    registros.Asistencias,
		"/actas-negacion":             registros.Actas,
	}
	for path, controller := range tablas {
		grupo := v1.Group(path)
		grupo.GET("", controller.GetAll)
		grupo.GET("/:id", controller.GetByID)
		grupo.GET("/estudiante/:id", controller.GetByEstudiante)
		grupo.POST("", controller.Create)
		grupo.PUT("/:id", controller.Update)
		grupo.DELETE("/:id", controller.Delete)
	}

	v1.GET("/estadisticas", estadisticasController.GetEstadisticas)
}

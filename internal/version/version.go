package version

// Version es la versión actual de MateBacklog
// Esta versión debe actualizarse en cada release
const Version = "0.3.0"

// FullVersion retorna la versión con el prefijo v
func FullVersion() string {
	return "v" + Version
}

// UserAgent retorna el identificador que se envía en cada request HTTP
func UserAgent() string {
	return "mate-backlog/" + Version
}

// compileinfoprint is imported for the side effect of printing the build
// information to os.Stderr at startup.
package compileinfoprint

import "github.com/carbocation/movindex/compileinfo"

func init() {
	compileinfo.PrintToStdErr()
}

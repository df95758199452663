package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questnote/pkg/runner/mcp"
)

// mcpOptions holds the flags of the mcp command.
type mcpOptions struct {
	transport string
	host      string
	port      int
	path      string
	certFile  string
	keyFile   string
}

func (o *mcpOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.transport, "transport", string(mcp.TransportHTTP), "how clients connect: http or stdio")
	cmd.Flags().StringVar(&o.host, "http-host", "127.0.0.1", "interface the diary server binds to")
	cmd.Flags().IntVar(&o.port, "http-port", 8080, "port the diary server binds to, 0 picks a free one")
	cmd.Flags().StringVar(&o.path, "http-path", "/mcp", "URL path of the MCP endpoint")
	cmd.Flags().StringVar(&o.certFile, "http-tls-cert", "", "certificate file, serves https together with --http-tls-key")
	cmd.Flags().StringVar(&o.keyFile, "http-tls-key", "", "private key file for --http-tls-cert")
}

func (o *mcpOptions) endpoint() string {
	p := strings.TrimSpace(o.path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

func (o *mcpOptions) tls() bool {
	return strings.TrimSpace(o.certFile) != "" && strings.TrimSpace(o.keyFile) != ""
}

func (o *mcpOptions) bindHost() string {
	if h := strings.TrimSpace(o.host); h != "" {
		return h
	}
	return "127.0.0.1"
}

// listenURL is the address a diary client should dial once the listener is up.
// Wildcard binds are reported as loopback.
func listenURL(host string, bound net.Addr, path string, secure bool) string {
	scheme := "http"
	if secure {
		scheme = "https"
	}
	tcp, ok := bound.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + bound.String() + path
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + path
}

func addMCP(topLevel *cobra.Command, e *env) {
	o := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the game diary to MCP clients.",
		Long: `Serve the game diary over the Model Context Protocol so an assistant can
read and write it.

Tools: list_games, add_game, remove_game, add_entry, delete_entry,
list_entries, entries_on_day, calendar_month and translate.
Resources: questnote://games and questnote://games/{name}.

Every call rereads the diary, so entries added from the command line while
the server runs are visible to clients and are never overwritten.`,
		Example: `
  # Streamable HTTP on 127.0.0.1:8080/mcp
  questnote mcp

  # Let a desktop assistant spawn the server over stdin/stdout
  questnote mcp --transport stdio

  # Any free port, printed once the listener is up
  questnote mcp --http-port 0
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := e.service(cmd.Context())
			if err != nil {
				return err
			}

			path := o.endpoint()
			r := mcp.Runner{
				Service:          svc,
				Translator:       e.translator(),
				Logger:           e.log(),
				Name:             "questnote",
				Version:          version,
				HTTPEndpointPath: path,
				HTTPServerCert:   strings.TrimSpace(o.certFile),
				HTTPServerKey:    strings.TrimSpace(o.keyFile),
			}

			switch t := mcp.Transport(strings.ToLower(strings.TrimSpace(o.transport))); t {
			case mcp.TransportStdio:
				r.Transport = t
			case "", mcp.TransportHTTP:
				if o.port < 0 || o.port > 65535 {
					return fmt.Errorf("invalid http-port %d", o.port)
				}
				host := o.bindHost()
				r.Transport = mcp.TransportHTTP
				r.HTTPListenAddr = net.JoinHostPort(host, strconv.Itoa(o.port))
				r.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "diary MCP server at %s\n", listenURL(host, a, path, o.tls()))
				}
			default:
				return fmt.Errorf("unsupported transport %q (expected http or stdio)", o.transport)
			}

			return r.Do(cmd.Context())
		},
	}
	o.addFlags(cmd)

	topLevel.AddCommand(cmd)
}

// Package ssl generates self-signed certificates for local development sites.
//
// Certificates are produced by running openssl as an external command:
//
//	openssl req -x509 -nodes -days 365 -newkey rsa:2048 \
//	    -keyout <ssl dir>/<domain>.key -out <ssl dir>/<domain>.crt \
//	    -subj "/C=NZ/ST=Wellington/L=Wellington/O=Silverstripe/OU=Development/CN=<domain>"
//
// The command is run synchronously and its exit status is checked. A missing
// binary returns errors.ErrOpenSSLNotInstalled; a non-zero exit returns an
// error matching errors.ErrCertificate that carries the exit code and the
// command's output.
//
// # Usage
//
//	gen := ssl.NewGenerator(executor.NewSystemExecutor(), settings.SSLDir())
//	cert, err := gen.Generate(ctx, "secure.test", subject)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cert.CertPath, cert.KeyPath)
//
// # Testing
//
// Pass an executor.MockExecutor to NewGenerator to check the arguments
// without running openssl.
package ssl

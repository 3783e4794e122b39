// Package sftp fetches workbook files from the remote drop directory
// payroll sheets are delivered to.
package sftp

import (
	"fmt"
	"io"
	"time"

	pkgsftp "github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

type Config struct {
	Username   string
	Password   string
	PrivateKey string
	Server     string
	Timeout    time.Duration
}

type Client struct {
	sshClient  *ssh.Client
	sftpClient *pkgsftp.Client
}

func New(config Config) (*Client, error) {
	var auth []ssh.AuthMethod

	if config.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(config.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("parse private key: %w", err)
		}
		auth = append(auth, ssh.PublicKeys(signer))
	}

	if config.Password != "" {
		auth = append(auth, ssh.Password(config.Password))
	}

	if len(auth) == 0 {
		return nil, fmt.Errorf("no authentication method configured")
	}

	sshConfig := &ssh.ClientConfig{
		User:            config.Username,
		Auth:            auth,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         config.Timeout,
	}

	sshClient, err := ssh.Dial("tcp", config.Server, sshConfig)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", config.Server, err)
	}

	sftpClient, err := pkgsftp.NewClient(sshClient)
	if err != nil {
		sshClient.Close()
		return nil, fmt.Errorf("start sftp session: %w", err)
	}

	return &Client{
		sshClient:  sshClient,
		sftpClient: sftpClient,
	}, nil
}

// Download opens a remote file for reading. The caller closes it.
func (c *Client) Download(remotePath string) (io.ReadCloser, error) {
	file, err := c.sftpClient.Open(remotePath)
	if err != nil {
		return nil, fmt.Errorf("open remote file %s: %w", remotePath, err)
	}
	return file, nil
}

func (c *Client) Close() error {
	if err := c.sftpClient.Close(); err != nil {
		c.sshClient.Close()
		return err
	}
	return c.sshClient.Close()
}
